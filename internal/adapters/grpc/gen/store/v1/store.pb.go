// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.10
// 	protoc        (unknown)
// source: store/v1/store.proto

package storepb

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type AddStoreRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AddStoreRequest) Reset() {
	*x = AddStoreRequest{}
	mi := &file_store_v1_store_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AddStoreRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AddStoreRequest) ProtoMessage() {}

func (x *AddStoreRequest) ProtoReflect() protoreflect.Message {
	mi := &file_store_v1_store_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AddStoreRequest.ProtoReflect.Descriptor instead.
func (*AddStoreRequest) Descriptor() ([]byte, []int) {
	return file_store_v1_store_proto_rawDescGZIP(), []int{0}
}

func (x *AddStoreRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

type AddStoreResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Stores        []string               `protobuf:"bytes,1,rep,name=stores,proto3" json:"stores,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AddStoreResponse) Reset() {
	*x = AddStoreResponse{}
	mi := &file_store_v1_store_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AddStoreResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AddStoreResponse) ProtoMessage() {}

func (x *AddStoreResponse) ProtoReflect() protoreflect.Message {
	mi := &file_store_v1_store_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AddStoreResponse.ProtoReflect.Descriptor instead.
func (*AddStoreResponse) Descriptor() ([]byte, []int) {
	return file_store_v1_store_proto_rawDescGZIP(), []int{1}
}

func (x *AddStoreResponse) GetStores() []string {
	if x != nil {
		return x.Stores
	}
	return nil
}

type DeleteStoreRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteStoreRequest) Reset() {
	*x = DeleteStoreRequest{}
	mi := &file_store_v1_store_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteStoreRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteStoreRequest) ProtoMessage() {}

func (x *DeleteStoreRequest) ProtoReflect() protoreflect.Message {
	mi := &file_store_v1_store_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteStoreRequest.ProtoReflect.Descriptor instead.
func (*DeleteStoreRequest) Descriptor() ([]byte, []int) {
	return file_store_v1_store_proto_rawDescGZIP(), []int{2}
}

func (x *DeleteStoreRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

type DeleteStoreResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Stores        []string               `protobuf:"bytes,1,rep,name=stores,proto3" json:"stores,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteStoreResponse) Reset() {
	*x = DeleteStoreResponse{}
	mi := &file_store_v1_store_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteStoreResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteStoreResponse) ProtoMessage() {}

func (x *DeleteStoreResponse) ProtoReflect() protoreflect.Message {
	mi := &file_store_v1_store_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteStoreResponse.ProtoReflect.Descriptor instead.
func (*DeleteStoreResponse) Descriptor() ([]byte, []int) {
	return file_store_v1_store_proto_rawDescGZIP(), []int{3}
}

func (x *DeleteStoreResponse) GetStores() []string {
	if x != nil {
		return x.Stores
	}
	return nil
}

type ListStoresRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListStoresRequest) Reset() {
	*x = ListStoresRequest{}
	mi := &file_store_v1_store_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListStoresRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListStoresRequest) ProtoMessage() {}

func (x *ListStoresRequest) ProtoReflect() protoreflect.Message {
	mi := &file_store_v1_store_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListStoresRequest.ProtoReflect.Descriptor instead.
func (*ListStoresRequest) Descriptor() ([]byte, []int) {
	return file_store_v1_store_proto_rawDescGZIP(), []int{4}
}

type ListStoresResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Stores        []string               `protobuf:"bytes,1,rep,name=stores,proto3" json:"stores,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListStoresResponse) Reset() {
	*x = ListStoresResponse{}
	mi := &file_store_v1_store_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListStoresResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListStoresResponse) ProtoMessage() {}

func (x *ListStoresResponse) ProtoReflect() protoreflect.Message {
	mi := &file_store_v1_store_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListStoresResponse.ProtoReflect.Descriptor instead.
func (*ListStoresResponse) Descriptor() ([]byte, []int) {
	return file_store_v1_store_proto_rawDescGZIP(), []int{5}
}

func (x *ListStoresResponse) GetStores() []string {
	if x != nil {
		return x.Stores
	}
	return nil
}

var File_store_v1_store_proto protoreflect.FileDescriptor

const file_store_v1_store_proto_rawDesc = "" +
	"\n" +
	"\x14store/v1/store.proto\x12\x0fkintai.store.v1\"%\n" +
	"\x0fAddStoreRequest\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\"*\n" +
	"\x10AddStoreResponse\x12\x16\n" +
	"\x06stores\x18\x01 \x03(\tR\x06stores\"(\n" +
	"\x12DeleteStoreRequest\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\"-\n" +
	"\x13DeleteStoreResponse\x12\x16\n" +
	"\x06stores\x18\x01 \x03(\tR\x06stores\"\x13\n" +
	"\x11ListStoresRequest\",\n" +
	"\x12ListStoresResponse\x12\x16\n" +
	"\x06stores\x18\x01 \x03(\tR\x06stores2\x90\x02\n" +
	"\fStoreService\x12O\n" +
	"\bAddStore\x12 .kintai.store.v1.AddStoreRequest\x1a!.kintai.store.v1.AddStoreResponse\x12X\n" +
	"\vDeleteStore\x12#.kintai.store.v1.DeleteStoreRequest\x1a$.kintai.store.v1.DeleteStoreResponse\x12U\n" +
	"\n" +
	"ListStores\x12\".kintai.store.v1.ListStoresRequest\x1a#.kintai.store.v1.ListStoresResponseBRZPgithub.com/ogurasousui/kintai-points/internal/adapters/grpc/gen/store/v1;storepbb\x06proto3"

var (
	file_store_v1_store_proto_rawDescOnce sync.Once
	file_store_v1_store_proto_rawDescData []byte
)

func file_store_v1_store_proto_rawDescGZIP() []byte {
	file_store_v1_store_proto_rawDescOnce.Do(func() {
		file_store_v1_store_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_store_v1_store_proto_rawDesc), len(file_store_v1_store_proto_rawDesc)))
	})
	return file_store_v1_store_proto_rawDescData
}

var file_store_v1_store_proto_msgTypes = make([]protoimpl.MessageInfo, 6)
var file_store_v1_store_proto_goTypes = []any{
	(*AddStoreRequest)(nil),     // 0: kintai.store.v1.AddStoreRequest
	(*AddStoreResponse)(nil),    // 1: kintai.store.v1.AddStoreResponse
	(*DeleteStoreRequest)(nil),  // 2: kintai.store.v1.DeleteStoreRequest
	(*DeleteStoreResponse)(nil), // 3: kintai.store.v1.DeleteStoreResponse
	(*ListStoresRequest)(nil),   // 4: kintai.store.v1.ListStoresRequest
	(*ListStoresResponse)(nil),  // 5: kintai.store.v1.ListStoresResponse
}
var file_store_v1_store_proto_depIdxs = []int32{
	0, // 0: kintai.store.v1.StoreService.AddStore:input_type -> kintai.store.v1.AddStoreRequest
	2, // 1: kintai.store.v1.StoreService.DeleteStore:input_type -> kintai.store.v1.DeleteStoreRequest
	4, // 2: kintai.store.v1.StoreService.ListStores:input_type -> kintai.store.v1.ListStoresRequest
	1, // 3: kintai.store.v1.StoreService.AddStore:output_type -> kintai.store.v1.AddStoreResponse
	3, // 4: kintai.store.v1.StoreService.DeleteStore:output_type -> kintai.store.v1.DeleteStoreResponse
	5, // 5: kintai.store.v1.StoreService.ListStores:output_type -> kintai.store.v1.ListStoresResponse
	3, // [3:6] is the sub-list for method output_type
	0, // [0:3] is the sub-list for method input_type
	0, // [0:0] is the sub-list for extension type_name
	0, // [0:0] is the sub-list for extension extendee
	0, // [0:0] is the sub-list for field type_name
}

func init() { file_store_v1_store_proto_init() }
func file_store_v1_store_proto_init() {
	if File_store_v1_store_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_store_v1_store_proto_rawDesc), len(file_store_v1_store_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   6,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_store_v1_store_proto_goTypes,
		DependencyIndexes: file_store_v1_store_proto_depIdxs,
		MessageInfos:      file_store_v1_store_proto_msgTypes,
	}.Build()
	File_store_v1_store_proto = out.File
	file_store_v1_store_proto_goTypes = nil
	file_store_v1_store_proto_depIdxs = nil
}
