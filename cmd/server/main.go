package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"google.golang.org/grpc"

	"github.com/raidixlab/extentindex/api/grpcserver"
	pb "github.com/raidixlab/extentindex/api/pb"

	"github.com/raidixlab/extentindex/extentmap"
	"github.com/raidixlab/extentindex/infra/kafka"
	"github.com/raidixlab/extentindex/infra/memory"
	"github.com/raidixlab/extentindex/infra/outbox"
	"github.com/raidixlab/extentindex/infra/sequence"
	"github.com/raidixlab/extentindex/infra/wal"
	"github.com/raidixlab/extentindex/jobs/broadcaster"
	"github.com/raidixlab/extentindex/service"
)

func main() {
	var (
		listen        = flag.String("listen", ":50051", "gRPC listen address")
		dataDir       = flag.String("data", "./data", "data directory")
		volume        = flag.String("volume", "vol0", "volume name")
		brokers       = flag.String("brokers", "", "comma-separated Kafka brokers (empty disables publishing)")
		topic         = flag.String("topic", "extent-events", "Kafka topic for extent change events")
		announceTopic = flag.String("announce-topic", "extent-snapshots", "Kafka topic for snapshot announcements")
		snapInterval  = flag.Duration("snapshot-interval", time.Minute, "snapshot interval")
		segmentSize   = flag.Int64("wal-segment-size", 2<<20, "WAL segment size in bytes")
	)
	flag.Parse()

	walDir := filepath.Join(*dataDir, "wal")
	outboxDir := filepath.Join(*dataDir, "outbox")
	snapDir := filepath.Join(*dataDir, "snapshots")

	// ---------------- Change WAL ----------------

	changeWAL, err := wal.Open(wal.Config{
		Dir:             walDir,
		SegmentSize:     *segmentSize,
		SegmentDuration: time.Minute,
	})
	if err != nil {
		log.Fatalf("wal init failed: %v", err)
	}
	defer changeWAL.Close()

	// ---------------- Outbox ----------------

	ob, err := outbox.Open(outboxDir)
	if err != nil {
		log.Fatalf("outbox init failed: %v", err)
	}
	defer ob.Close()

	// ---------------- Sequencer ----------------

	seqGen := sequence.New(0)

	// ---------------- Memory ----------------

	pool := memory.NewPool(func() *extentmap.Extent {
		return extentmap.NewExtent(0, 0, 0, 0)
	})

	// ---------------- Domain ----------------

	idx := extentmap.New()

	// ---------------- Restore ----------------

	if err := service.RestoreFromSnapshot(snapDir, walDir, idx, pool, seqGen); err != nil {
		log.Fatalf("restore failed: %v", err)
	}

	// ---------------- Producers ----------------

	var brokerList []string
	var announcer *kafka.Producer
	if *brokers != "" {
		brokerList = strings.Split(*brokers, ",")
		announcer = kafka.NewProducer(brokerList, *announceTopic)
		defer announcer.Close()
	}

	// ---------------- Service ----------------

	svc := service.NewIndexService(
		idx,
		pool,
		seqGen,
		changeWAL,
		ob,
		announcer,
		*volume,
	)

	// ---------------- Background Jobs ----------------

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	svc.StartSnapshotJob(ctx, snapDir, *snapInterval)

	if len(brokerList) > 0 {
		bc, err := broadcaster.New(ob, brokerList, *topic)
		if err != nil {
			log.Fatalf("broadcaster init failed: %v", err)
		}
		defer bc.Close()
		bc.Start(ctx)
	}

	// ---------------- gRPC ----------------

	lis, err := net.Listen("tcp", *listen)
	if err != nil {
		log.Fatalf("listen failed: %v", err)
	}

	grpcSrv := grpc.NewServer()
	pb.RegisterExtentIndexServer(
		grpcSrv,
		grpcserver.NewServer(svc),
	)

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		log.Println("shutting down")
		cancel()
		grpcSrv.GracefulStop()
	}()

	fmt.Printf("🚀 extent index for %s running on %s\n", *volume, *listen)

	if err := grpcSrv.Serve(lis); err != nil {
		log.Fatalf("gRPC server exited: %v", err)
	}
}
