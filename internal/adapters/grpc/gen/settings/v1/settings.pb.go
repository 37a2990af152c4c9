// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.10
// 	protoc        (unknown)
// source: settings/v1/settings.proto

package settingspb

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

type GetThemeRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetThemeRequest) Reset() {
	*x = GetThemeRequest{}
	mi := &file_settings_v1_settings_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetThemeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetThemeRequest) ProtoMessage() {}

func (x *GetThemeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_settings_v1_settings_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetThemeRequest.ProtoReflect.Descriptor instead.
func (*GetThemeRequest) Descriptor() ([]byte, []int) {
	return file_settings_v1_settings_proto_rawDescGZIP(), []int{0}
}

type GetThemeResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Theme         string                 `protobuf:"bytes,1,opt,name=theme,proto3" json:"theme,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetThemeResponse) Reset() {
	*x = GetThemeResponse{}
	mi := &file_settings_v1_settings_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetThemeResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetThemeResponse) ProtoMessage() {}

func (x *GetThemeResponse) ProtoReflect() protoreflect.Message {
	mi := &file_settings_v1_settings_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetThemeResponse.ProtoReflect.Descriptor instead.
func (*GetThemeResponse) Descriptor() ([]byte, []int) {
	return file_settings_v1_settings_proto_rawDescGZIP(), []int{1}
}

func (x *GetThemeResponse) GetTheme() string {
	if x != nil {
		return x.Theme
	}
	return ""
}

type SetThemeRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// "dark" または "light"。
	Theme         string `protobuf:"bytes,1,opt,name=theme,proto3" json:"theme,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetThemeRequest) Reset() {
	*x = SetThemeRequest{}
	mi := &file_settings_v1_settings_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetThemeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetThemeRequest) ProtoMessage() {}

func (x *SetThemeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_settings_v1_settings_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetThemeRequest.ProtoReflect.Descriptor instead.
func (*SetThemeRequest) Descriptor() ([]byte, []int) {
	return file_settings_v1_settings_proto_rawDescGZIP(), []int{2}
}

func (x *SetThemeRequest) GetTheme() string {
	if x != nil {
		return x.Theme
	}
	return ""
}

type SetThemeResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Theme         string                 `protobuf:"bytes,1,opt,name=theme,proto3" json:"theme,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetThemeResponse) Reset() {
	*x = SetThemeResponse{}
	mi := &file_settings_v1_settings_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetThemeResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetThemeResponse) ProtoMessage() {}

func (x *SetThemeResponse) ProtoReflect() protoreflect.Message {
	mi := &file_settings_v1_settings_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetThemeResponse.ProtoReflect.Descriptor instead.
func (*SetThemeResponse) Descriptor() ([]byte, []int) {
	return file_settings_v1_settings_proto_rawDescGZIP(), []int{3}
}

func (x *SetThemeResponse) GetTheme() string {
	if x != nil {
		return x.Theme
	}
	return ""
}

type GetVersionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetVersionRequest) Reset() {
	*x = GetVersionRequest{}
	mi := &file_settings_v1_settings_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetVersionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetVersionRequest) ProtoMessage() {}

func (x *GetVersionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_settings_v1_settings_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetVersionRequest.ProtoReflect.Descriptor instead.
func (*GetVersionRequest) Descriptor() ([]byte, []int) {
	return file_settings_v1_settings_proto_rawDescGZIP(), []int{4}
}

type GetVersionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Version       string                 `protobuf:"bytes,1,opt,name=version,proto3" json:"version,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetVersionResponse) Reset() {
	*x = GetVersionResponse{}
	mi := &file_settings_v1_settings_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetVersionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetVersionResponse) ProtoMessage() {}

func (x *GetVersionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_settings_v1_settings_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetVersionResponse.ProtoReflect.Descriptor instead.
func (*GetVersionResponse) Descriptor() ([]byte, []int) {
	return file_settings_v1_settings_proto_rawDescGZIP(), []int{5}
}

func (x *GetVersionResponse) GetVersion() string {
	if x != nil {
		return x.Version
	}
	return ""
}

type CheckForUpdatesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CheckForUpdatesRequest) Reset() {
	*x = CheckForUpdatesRequest{}
	mi := &file_settings_v1_settings_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CheckForUpdatesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CheckForUpdatesRequest) ProtoMessage() {}

func (x *CheckForUpdatesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_settings_v1_settings_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CheckForUpdatesRequest.ProtoReflect.Descriptor instead.
func (*CheckForUpdatesRequest) Descriptor() ([]byte, []int) {
	return file_settings_v1_settings_proto_rawDescGZIP(), []int{6}
}

type CheckForUpdatesResponse struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Ok             bool                   `protobuf:"varint,1,opt,name=ok,proto3" json:"ok,omitempty"`
	CurrentVersion string                 `protobuf:"bytes,2,opt,name=current_version,json=currentVersion,proto3" json:"current_version,omitempty"`
	LatestVersion  string                 `protobuf:"bytes,3,opt,name=latest_version,json=latestVersion,proto3" json:"latest_version,omitempty"`
	Message        string                 `protobuf:"bytes,4,opt,name=message,proto3" json:"message,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *CheckForUpdatesResponse) Reset() {
	*x = CheckForUpdatesResponse{}
	mi := &file_settings_v1_settings_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CheckForUpdatesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CheckForUpdatesResponse) ProtoMessage() {}

func (x *CheckForUpdatesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_settings_v1_settings_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CheckForUpdatesResponse.ProtoReflect.Descriptor instead.
func (*CheckForUpdatesResponse) Descriptor() ([]byte, []int) {
	return file_settings_v1_settings_proto_rawDescGZIP(), []int{7}
}

func (x *CheckForUpdatesResponse) GetOk() bool {
	if x != nil {
		return x.Ok
	}
	return false
}

func (x *CheckForUpdatesResponse) GetCurrentVersion() string {
	if x != nil {
		return x.CurrentVersion
	}
	return ""
}

func (x *CheckForUpdatesResponse) GetLatestVersion() string {
	if x != nil {
		return x.LatestVersion
	}
	return ""
}

func (x *CheckForUpdatesResponse) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

type InstallUpdateRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *InstallUpdateRequest) Reset() {
	*x = InstallUpdateRequest{}
	mi := &file_settings_v1_settings_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *InstallUpdateRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*InstallUpdateRequest) ProtoMessage() {}

func (x *InstallUpdateRequest) ProtoReflect() protoreflect.Message {
	mi := &file_settings_v1_settings_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use InstallUpdateRequest.ProtoReflect.Descriptor instead.
func (*InstallUpdateRequest) Descriptor() ([]byte, []int) {
	return file_settings_v1_settings_proto_rawDescGZIP(), []int{8}
}

type InstallUpdateResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Ok            bool                   `protobuf:"varint,1,opt,name=ok,proto3" json:"ok,omitempty"`
	Message       string                 `protobuf:"bytes,2,opt,name=message,proto3" json:"message,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *InstallUpdateResponse) Reset() {
	*x = InstallUpdateResponse{}
	mi := &file_settings_v1_settings_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *InstallUpdateResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*InstallUpdateResponse) ProtoMessage() {}

func (x *InstallUpdateResponse) ProtoReflect() protoreflect.Message {
	mi := &file_settings_v1_settings_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use InstallUpdateResponse.ProtoReflect.Descriptor instead.
func (*InstallUpdateResponse) Descriptor() ([]byte, []int) {
	return file_settings_v1_settings_proto_rawDescGZIP(), []int{9}
}

func (x *InstallUpdateResponse) GetOk() bool {
	if x != nil {
		return x.Ok
	}
	return false
}

func (x *InstallUpdateResponse) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

type WatchUpdateStatusRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *WatchUpdateStatusRequest) Reset() {
	*x = WatchUpdateStatusRequest{}
	mi := &file_settings_v1_settings_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *WatchUpdateStatusRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*WatchUpdateStatusRequest) ProtoMessage() {}

func (x *WatchUpdateStatusRequest) ProtoReflect() protoreflect.Message {
	mi := &file_settings_v1_settings_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use WatchUpdateStatusRequest.ProtoReflect.Descriptor instead.
func (*WatchUpdateStatusRequest) Descriptor() ([]byte, []int) {
	return file_settings_v1_settings_proto_rawDescGZIP(), []int{10}
}

type UpdateStatusEvent struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// idle / checking / none / available / downloading / ready / error のいずれか。
	State         string `protobuf:"bytes,1,opt,name=state,proto3" json:"state,omitempty"`
	Message       string `protobuf:"bytes,2,opt,name=message,proto3" json:"message,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateStatusEvent) Reset() {
	*x = UpdateStatusEvent{}
	mi := &file_settings_v1_settings_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateStatusEvent) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateStatusEvent) ProtoMessage() {}

func (x *UpdateStatusEvent) ProtoReflect() protoreflect.Message {
	mi := &file_settings_v1_settings_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateStatusEvent.ProtoReflect.Descriptor instead.
func (*UpdateStatusEvent) Descriptor() ([]byte, []int) {
	return file_settings_v1_settings_proto_rawDescGZIP(), []int{11}
}

func (x *UpdateStatusEvent) GetState() string {
	if x != nil {
		return x.State
	}
	return ""
}

func (x *UpdateStatusEvent) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

var File_settings_v1_settings_proto protoreflect.FileDescriptor

const file_settings_v1_settings_proto_rawDesc = "" +
	"\n" +
	"\x1asettings/v1/settings.proto\x12\x12kintai.settings.v1\"\x11\n" +
	"\x0fGetThemeRequest\"(\n" +
	"\x10GetThemeResponse\x12\x14\n" +
	"\x05theme\x18\x01 \x01(\tR\x05theme\"'\n" +
	"\x0fSetThemeRequest\x12\x14\n" +
	"\x05theme\x18\x01 \x01(\tR\x05theme\"(\n" +
	"\x10SetThemeResponse\x12\x14\n" +
	"\x05theme\x18\x01 \x01(\tR\x05theme\"\x13\n" +
	"\x11GetVersionRequest\".\n" +
	"\x12GetVersionResponse\x12\x18\n" +
	"\aversion\x18\x01 \x01(\tR\aversion\"\x18\n" +
	"\x16CheckForUpdatesRequest\"\x93\x01\n" +
	"\x17CheckForUpdatesResponse\x12\x0e\n" +
	"\x02ok\x18\x01 \x01(\bR\x02ok\x12'\n" +
	"\x0fcurrent_version\x18\x02 \x01(\tR\x0ecurrentVersion\x12%\n" +
	"\x0elatest_version\x18\x03 \x01(\tR\rlatestVersion\x12\x18\n" +
	"\amessage\x18\x04 \x01(\tR\amessage\"\x16\n" +
	"\x14InstallUpdateRequest\"A\n" +
	"\x15InstallUpdateResponse\x12\x0e\n" +
	"\x02ok\x18\x01 \x01(\bR\x02ok\x12\x18\n" +
	"\amessage\x18\x02 \x01(\tR\amessage\"\x1a\n" +
	"\x18WatchUpdateStatusRequest\"C\n" +
	"\x11UpdateStatusEvent\x12\x14\n" +
	"\x05state\x18\x01 \x01(\tR\x05state\x12\x18\n" +
	"\amessage\x18\x02 \x01(\tR\amessage2\xda\x04\n" +
	"\x0fSettingsService\x12U\n" +
	"\bGetTheme\x12#.kintai.settings.v1.GetThemeRequest\x1a$.kintai.settings.v1.GetThemeResponse\x12U\n" +
	"\bSetTheme\x12#.kintai.settings.v1.SetThemeRequest\x1a$.kintai.settings.v1.SetThemeResponse\x12[\n" +
	"\n" +
	"GetVersion\x12%.kintai.settings.v1.GetVersionRequest\x1a&.kintai.settings.v1.GetVersionResponse\x12j\n" +
	"\x0fCheckForUpdates\x12*.kintai.settings.v1.CheckForUpdatesRequest\x1a+.kintai.settings.v1.CheckForUpdatesResponse\x12d\n" +
	"\rInstallUpdate\x12(.kintai.settings.v1.InstallUpdateRequest\x1a).kintai.settings.v1.InstallUpdateResponse\x12j\n" +
	"\x11WatchUpdateStatus\x12,.kintai.settings.v1.WatchUpdateStatusRequest\x1a%.kintai.settings.v1.UpdateStatusEvent0\x01BXZVgithub.com/ogurasousui/kintai-points/internal/adapters/grpc/gen/settings/v1;settingspbb\x06proto3"

var (
	file_settings_v1_settings_proto_rawDescOnce sync.Once
	file_settings_v1_settings_proto_rawDescData []byte
)

func file_settings_v1_settings_proto_rawDescGZIP() []byte {
	file_settings_v1_settings_proto_rawDescOnce.Do(func() {
		file_settings_v1_settings_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_settings_v1_settings_proto_rawDesc), len(file_settings_v1_settings_proto_rawDesc)))
	})
	return file_settings_v1_settings_proto_rawDescData
}

var file_settings_v1_settings_proto_msgTypes = make([]protoimpl.MessageInfo, 12)
var file_settings_v1_settings_proto_goTypes = []any{
	(*GetThemeRequest)(nil),          // 0: kintai.settings.v1.GetThemeRequest
	(*GetThemeResponse)(nil),         // 1: kintai.settings.v1.GetThemeResponse
	(*SetThemeRequest)(nil),          // 2: kintai.settings.v1.SetThemeRequest
	(*SetThemeResponse)(nil),         // 3: kintai.settings.v1.SetThemeResponse
	(*GetVersionRequest)(nil),        // 4: kintai.settings.v1.GetVersionRequest
	(*GetVersionResponse)(nil),       // 5: kintai.settings.v1.GetVersionResponse
	(*CheckForUpdatesRequest)(nil),   // 6: kintai.settings.v1.CheckForUpdatesRequest
	(*CheckForUpdatesResponse)(nil),  // 7: kintai.settings.v1.CheckForUpdatesResponse
	(*InstallUpdateRequest)(nil),     // 8: kintai.settings.v1.InstallUpdateRequest
	(*InstallUpdateResponse)(nil),    // 9: kintai.settings.v1.InstallUpdateResponse
	(*WatchUpdateStatusRequest)(nil), // 10: kintai.settings.v1.WatchUpdateStatusRequest
	(*UpdateStatusEvent)(nil),        // 11: kintai.settings.v1.UpdateStatusEvent
}
var file_settings_v1_settings_proto_depIdxs = []int32{
	0,  // 0: kintai.settings.v1.SettingsService.GetTheme:input_type -> kintai.settings.v1.GetThemeRequest
	2,  // 1: kintai.settings.v1.SettingsService.SetTheme:input_type -> kintai.settings.v1.SetThemeRequest
	4,  // 2: kintai.settings.v1.SettingsService.GetVersion:input_type -> kintai.settings.v1.GetVersionRequest
	6,  // 3: kintai.settings.v1.SettingsService.CheckForUpdates:input_type -> kintai.settings.v1.CheckForUpdatesRequest
	8,  // 4: kintai.settings.v1.SettingsService.InstallUpdate:input_type -> kintai.settings.v1.InstallUpdateRequest
	10, // 5: kintai.settings.v1.SettingsService.WatchUpdateStatus:input_type -> kintai.settings.v1.WatchUpdateStatusRequest
	1,  // 6: kintai.settings.v1.SettingsService.GetTheme:output_type -> kintai.settings.v1.GetThemeResponse
	3,  // 7: kintai.settings.v1.SettingsService.SetTheme:output_type -> kintai.settings.v1.SetThemeResponse
	5,  // 8: kintai.settings.v1.SettingsService.GetVersion:output_type -> kintai.settings.v1.GetVersionResponse
	7,  // 9: kintai.settings.v1.SettingsService.CheckForUpdates:output_type -> kintai.settings.v1.CheckForUpdatesResponse
	9,  // 10: kintai.settings.v1.SettingsService.InstallUpdate:output_type -> kintai.settings.v1.InstallUpdateResponse
	11, // 11: kintai.settings.v1.SettingsService.WatchUpdateStatus:output_type -> kintai.settings.v1.UpdateStatusEvent
	6,  // [6:12] is the sub-list for method output_type
	0,  // [0:6] is the sub-list for method input_type
	0,  // [0:0] is the sub-list for extension type_name
	0,  // [0:0] is the sub-list for extension extendee
	0,  // [0:0] is the sub-list for field type_name
}

func init() { file_settings_v1_settings_proto_init() }
func file_settings_v1_settings_proto_init() {
	if File_settings_v1_settings_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_settings_v1_settings_proto_rawDesc), len(file_settings_v1_settings_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   12,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_settings_v1_settings_proto_goTypes,
		DependencyIndexes: file_settings_v1_settings_proto_depIdxs,
		MessageInfos:      file_settings_v1_settings_proto_msgTypes,
	}.Build()
	File_settings_v1_settings_proto = out.File
	file_settings_v1_settings_proto_goTypes = nil
	file_settings_v1_settings_proto_depIdxs = nil
}
