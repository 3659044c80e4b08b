package grpcserver

import (
	"context"
	"errors"
	"log"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/raidixlab/extentindex/api/pb"
	"github.com/raidixlab/extentindex/extentmap"
	"github.com/raidixlab/extentindex/service"
)

// Server adapts IndexService to gRPC.
type Server struct {
	pb.UnimplementedExtentIndexServer
	svc *service.IndexService
}

func NewServer(svc *service.IndexService) *Server {
	return &Server{svc: svc}
}

// -------------------- Commands --------------------

func (s *Server) InsertExtent(
	ctx context.Context,
	req *pb.InsertExtentRequest,
) (*pb.InsertExtentResponse, error) {
	seq, err := s.svc.InsertExtent(req.Start, req.Blocks, req.Phys)
	if err != nil {
		return nil, toStatus(err)
	}

	log.Printf(
		"[gRPC] InsertExtent start=%d blocks=%d phys=%d seq=%d",
		req.Start, req.Blocks, req.Phys, seq,
	)

	return &pb.InsertExtentResponse{
		Extent: &pb.Extent{
			Start:  req.Start,
			Blocks: req.Blocks,
			Phys:   req.Phys,
			Seq:    seq,
		},
	}, nil
}

func (s *Server) RemoveExtent(
	ctx context.Context,
	req *pb.RemoveExtentRequest,
) (*pb.RemoveExtentResponse, error) {
	if err := s.svc.RemoveExtent(req.Start, req.Seq); err != nil {
		return nil, toStatus(err)
	}

	log.Printf("[gRPC] RemoveExtent start=%d seq=%d", req.Start, req.Seq)

	return &pb.RemoveExtentResponse{}, nil
}

// -------------------- Queries --------------------

func (s *Server) LookupBlock(
	ctx context.Context,
	req *pb.LookupBlockRequest,
) (*pb.LookupBlockResponse, error) {
	info, ok := s.svc.LookupBlock(req.Block)
	if !ok {
		return &pb.LookupBlockResponse{Mapped: false}, nil
	}

	return &pb.LookupBlockResponse{
		Mapped: true,
		Extent: toPB(info),
		Phys:   info.Translate(req.Block),
	}, nil
}

func (s *Server) NextMapped(
	ctx context.Context,
	req *pb.NextMappedRequest,
) (*pb.NextMappedResponse, error) {
	info, ok := s.svc.NextMappedFrom(req.From)
	if !ok {
		return &pb.NextMappedResponse{Mapped: false}, nil
	}

	return &pb.NextMappedResponse{Mapped: true, Extent: toPB(info)}, nil
}

func (s *Server) ListExtents(
	req *pb.ListExtentsRequest,
	stream pb.ExtentIndex_ListExtentsServer,
) error {
	for _, info := range s.svc.Extents(req.From) {
		if err := stream.Send(toPB(info)); err != nil {
			return err
		}
	}
	return nil
}

func (s *Server) Stats(
	ctx context.Context,
	req *pb.StatsRequest,
) (*pb.StatsResponse, error) {
	st := s.svc.Stats()

	return &pb.StatsResponse{
		Extents:      uint64(st.Extents),
		MappedBlocks: st.MappedBlocks,
		LastSeq:      st.LastSeq,
	}, nil
}

// -------------------- Converters --------------------

func toPB(info service.ExtentInfo) *pb.Extent {
	return &pb.Extent{
		Start:  info.Start,
		Blocks: info.Blocks,
		Phys:   info.Phys,
		Seq:    info.Seq,
	}
}

func toStatus(err error) error {
	switch {
	case errors.Is(err, extentmap.ErrZeroSize):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, extentmap.ErrNotMapped):
		return status.Error(codes.NotFound, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
