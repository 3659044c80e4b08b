// Package pb holds the wire types for api/extentindex.proto. They are
// maintained by hand so builds do not need protoc; the struct tags
// carry the field numbers the runtime derives the schema from. Keep
// them in sync with the .proto file.
package pb

import (
	"github.com/golang/protobuf/proto"
)

// ExtentEvent.Type values.
const (
	EventMap   uint32 = 1
	EventUnmap uint32 = 2
)

type Extent struct {
	Start  uint64 `protobuf:"varint,1,opt,name=start" json:"start,omitempty"`
	Blocks uint64 `protobuf:"varint,2,opt,name=blocks" json:"blocks,omitempty"`
	Phys   uint64 `protobuf:"varint,3,opt,name=phys" json:"phys,omitempty"`
	Seq    uint64 `protobuf:"varint,4,opt,name=seq" json:"seq,omitempty"`
}

func (m *Extent) Reset()         { *m = Extent{} }
func (m *Extent) String() string { return proto.CompactTextString(m) }
func (*Extent) ProtoMessage()    {}

type InsertExtentRequest struct {
	Start  uint64 `protobuf:"varint,1,opt,name=start" json:"start,omitempty"`
	Blocks uint64 `protobuf:"varint,2,opt,name=blocks" json:"blocks,omitempty"`
	Phys   uint64 `protobuf:"varint,3,opt,name=phys" json:"phys,omitempty"`
}

func (m *InsertExtentRequest) Reset()         { *m = InsertExtentRequest{} }
func (m *InsertExtentRequest) String() string { return proto.CompactTextString(m) }
func (*InsertExtentRequest) ProtoMessage()    {}

type InsertExtentResponse struct {
	Extent *Extent `protobuf:"bytes,1,opt,name=extent" json:"extent,omitempty"`
}

func (m *InsertExtentResponse) Reset()         { *m = InsertExtentResponse{} }
func (m *InsertExtentResponse) String() string { return proto.CompactTextString(m) }
func (*InsertExtentResponse) ProtoMessage()    {}

type RemoveExtentRequest struct {
	Start uint64 `protobuf:"varint,1,opt,name=start" json:"start,omitempty"`
	Seq   uint64 `protobuf:"varint,2,opt,name=seq" json:"seq,omitempty"`
}

func (m *RemoveExtentRequest) Reset()         { *m = RemoveExtentRequest{} }
func (m *RemoveExtentRequest) String() string { return proto.CompactTextString(m) }
func (*RemoveExtentRequest) ProtoMessage()    {}

type RemoveExtentResponse struct {
}

func (m *RemoveExtentResponse) Reset()         { *m = RemoveExtentResponse{} }
func (m *RemoveExtentResponse) String() string { return proto.CompactTextString(m) }
func (*RemoveExtentResponse) ProtoMessage()    {}

type LookupBlockRequest struct {
	Block uint64 `protobuf:"varint,1,opt,name=block" json:"block,omitempty"`
}

func (m *LookupBlockRequest) Reset()         { *m = LookupBlockRequest{} }
func (m *LookupBlockRequest) String() string { return proto.CompactTextString(m) }
func (*LookupBlockRequest) ProtoMessage()    {}

type LookupBlockResponse struct {
	Mapped bool    `protobuf:"varint,1,opt,name=mapped" json:"mapped,omitempty"`
	Extent *Extent `protobuf:"bytes,2,opt,name=extent" json:"extent,omitempty"`
	Phys   uint64  `protobuf:"varint,3,opt,name=phys" json:"phys,omitempty"`
}

func (m *LookupBlockResponse) Reset()         { *m = LookupBlockResponse{} }
func (m *LookupBlockResponse) String() string { return proto.CompactTextString(m) }
func (*LookupBlockResponse) ProtoMessage()    {}

type NextMappedRequest struct {
	From uint64 `protobuf:"varint,1,opt,name=from" json:"from,omitempty"`
}

func (m *NextMappedRequest) Reset()         { *m = NextMappedRequest{} }
func (m *NextMappedRequest) String() string { return proto.CompactTextString(m) }
func (*NextMappedRequest) ProtoMessage()    {}

type NextMappedResponse struct {
	Mapped bool    `protobuf:"varint,1,opt,name=mapped" json:"mapped,omitempty"`
	Extent *Extent `protobuf:"bytes,2,opt,name=extent" json:"extent,omitempty"`
}

func (m *NextMappedResponse) Reset()         { *m = NextMappedResponse{} }
func (m *NextMappedResponse) String() string { return proto.CompactTextString(m) }
func (*NextMappedResponse) ProtoMessage()    {}

type ListExtentsRequest struct {
	From uint64 `protobuf:"varint,1,opt,name=from" json:"from,omitempty"`
}

func (m *ListExtentsRequest) Reset()         { *m = ListExtentsRequest{} }
func (m *ListExtentsRequest) String() string { return proto.CompactTextString(m) }
func (*ListExtentsRequest) ProtoMessage()    {}

type StatsRequest struct {
}

func (m *StatsRequest) Reset()         { *m = StatsRequest{} }
func (m *StatsRequest) String() string { return proto.CompactTextString(m) }
func (*StatsRequest) ProtoMessage()    {}

type StatsResponse struct {
	Extents      uint64 `protobuf:"varint,1,opt,name=extents" json:"extents,omitempty"`
	MappedBlocks uint64 `protobuf:"varint,2,opt,name=mapped_blocks,json=mappedBlocks" json:"mapped_blocks,omitempty"`
	LastSeq      uint64 `protobuf:"varint,3,opt,name=last_seq,json=lastSeq" json:"last_seq,omitempty"`
}

func (m *StatsResponse) Reset()         { *m = StatsResponse{} }
func (m *StatsResponse) String() string { return proto.CompactTextString(m) }
func (*StatsResponse) ProtoMessage()    {}

type ExtentEvent struct {
	Type   uint32  `protobuf:"varint,1,opt,name=type" json:"type,omitempty"`
	Seq    uint64  `protobuf:"varint,2,opt,name=seq" json:"seq,omitempty"`
	Extent *Extent `protobuf:"bytes,3,opt,name=extent" json:"extent,omitempty"`
	Time   int64   `protobuf:"varint,4,opt,name=time" json:"time,omitempty"`
}

func (m *ExtentEvent) Reset()         { *m = ExtentEvent{} }
func (m *ExtentEvent) String() string { return proto.CompactTextString(m) }
func (*ExtentEvent) ProtoMessage()    {}

type SnapshotAnnouncement struct {
	Volume       string `protobuf:"bytes,1,opt,name=volume" json:"volume,omitempty"`
	Seq          uint64 `protobuf:"varint,2,opt,name=seq" json:"seq,omitempty"`
	Extents      uint64 `protobuf:"varint,3,opt,name=extents" json:"extents,omitempty"`
	MappedBlocks uint64 `protobuf:"varint,4,opt,name=mapped_blocks,json=mappedBlocks" json:"mapped_blocks,omitempty"`
	Created      int64  `protobuf:"varint,5,opt,name=created" json:"created,omitempty"`
}

func (m *SnapshotAnnouncement) Reset()         { *m = SnapshotAnnouncement{} }
func (m *SnapshotAnnouncement) String() string { return proto.CompactTextString(m) }
func (*SnapshotAnnouncement) ProtoMessage()    {}
