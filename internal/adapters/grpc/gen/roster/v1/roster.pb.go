// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.10
// 	protoc        (unknown)
// source: roster/v1/roster.proto

package rosterpb

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

// 勤怠違反の区分。ポイント値はサーバー側のポイント表で決まる。
type InfractionCategory int32

const (
	InfractionCategory_INFRACTION_CATEGORY_UNSPECIFIED           InfractionCategory = 0
	InfractionCategory_INFRACTION_CATEGORY_CALL_OUT_PRIOR        InfractionCategory = 1
	InfractionCategory_INFRACTION_CATEGORY_CALL_OUT_AFTER_START  InfractionCategory = 2
	InfractionCategory_INFRACTION_CATEGORY_NO_CALL_NO_SHOW       InfractionCategory = 3
	InfractionCategory_INFRACTION_CATEGORY_TARDY_SHORT           InfractionCategory = 4
	InfractionCategory_INFRACTION_CATEGORY_TARDY_LONG            InfractionCategory = 5
	InfractionCategory_INFRACTION_CATEGORY_EARLY_DEPARTURE_SHORT InfractionCategory = 6
	InfractionCategory_INFRACTION_CATEGORY_EARLY_DEPARTURE_LONG  InfractionCategory = 7
	InfractionCategory_INFRACTION_CATEGORY_LATE_RETURN_SHORT     InfractionCategory = 8
	InfractionCategory_INFRACTION_CATEGORY_LATE_RETURN_LONG      InfractionCategory = 9
)

// Enum value maps for InfractionCategory.
var (
	InfractionCategory_name = map[int32]string{
		0: "INFRACTION_CATEGORY_UNSPECIFIED",
		1: "INFRACTION_CATEGORY_CALL_OUT_PRIOR",
		2: "INFRACTION_CATEGORY_CALL_OUT_AFTER_START",
		3: "INFRACTION_CATEGORY_NO_CALL_NO_SHOW",
		4: "INFRACTION_CATEGORY_TARDY_SHORT",
		5: "INFRACTION_CATEGORY_TARDY_LONG",
		6: "INFRACTION_CATEGORY_EARLY_DEPARTURE_SHORT",
		7: "INFRACTION_CATEGORY_EARLY_DEPARTURE_LONG",
		8: "INFRACTION_CATEGORY_LATE_RETURN_SHORT",
		9: "INFRACTION_CATEGORY_LATE_RETURN_LONG",
	}
	InfractionCategory_value = map[string]int32{
		"INFRACTION_CATEGORY_UNSPECIFIED":           0,
		"INFRACTION_CATEGORY_CALL_OUT_PRIOR":        1,
		"INFRACTION_CATEGORY_CALL_OUT_AFTER_START":  2,
		"INFRACTION_CATEGORY_NO_CALL_NO_SHOW":       3,
		"INFRACTION_CATEGORY_TARDY_SHORT":           4,
		"INFRACTION_CATEGORY_TARDY_LONG":            5,
		"INFRACTION_CATEGORY_EARLY_DEPARTURE_SHORT": 6,
		"INFRACTION_CATEGORY_EARLY_DEPARTURE_LONG":  7,
		"INFRACTION_CATEGORY_LATE_RETURN_SHORT":     8,
		"INFRACTION_CATEGORY_LATE_RETURN_LONG":      9,
	}
)

func (x InfractionCategory) Enum() *InfractionCategory {
	p := new(InfractionCategory)
	*p = x
	return p
}

func (x InfractionCategory) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (InfractionCategory) Descriptor() protoreflect.EnumDescriptor {
	return file_roster_v1_roster_proto_enumTypes[0].Descriptor()
}

func (InfractionCategory) Type() protoreflect.EnumType {
	return &file_roster_v1_roster_proto_enumTypes[0]
}

func (x InfractionCategory) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use InfractionCategory.Descriptor instead.
func (InfractionCategory) EnumDescriptor() ([]byte, []int) {
	return file_roster_v1_roster_proto_rawDescGZIP(), []int{0}
}

// 累計ポイントから導出される懲戒区分。
type Standing int32

const (
	Standing_STANDING_UNSPECIFIED           Standing = 0
	Standing_STANDING_OK                    Standing = 1
	Standing_STANDING_FIRST_WRITTEN_WARNING Standing = 2
	Standing_STANDING_FINAL_WRITTEN_WARNING Standing = 3
	Standing_STANDING_TERMINATION           Standing = 4
)

// Enum value maps for Standing.
var (
	Standing_name = map[int32]string{
		0: "STANDING_UNSPECIFIED",
		1: "STANDING_OK",
		2: "STANDING_FIRST_WRITTEN_WARNING",
		3: "STANDING_FINAL_WRITTEN_WARNING",
		4: "STANDING_TERMINATION",
	}
	Standing_value = map[string]int32{
		"STANDING_UNSPECIFIED":           0,
		"STANDING_OK":                    1,
		"STANDING_FIRST_WRITTEN_WARNING": 2,
		"STANDING_FINAL_WRITTEN_WARNING": 3,
		"STANDING_TERMINATION":           4,
	}
)

func (x Standing) Enum() *Standing {
	p := new(Standing)
	*p = x
	return p
}

func (x Standing) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (Standing) Descriptor() protoreflect.EnumDescriptor {
	return file_roster_v1_roster_proto_enumTypes[1].Descriptor()
}

func (Standing) Type() protoreflect.EnumType {
	return &file_roster_v1_roster_proto_enumTypes[1]
}

func (x Standing) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use Standing.Descriptor instead.
func (Standing) EnumDescriptor() ([]byte, []int) {
	return file_roster_v1_roster_proto_rawDescGZIP(), []int{1}
}

type Infraction struct {
	state    protoimpl.MessageState `protogen:"open.v1"`
	Id       string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Category InfractionCategory     `protobuf:"varint,2,opt,name=category,proto3,enum=kintai.roster.v1.InfractionCategory" json:"category,omitempty"`
	Label    string                 `protobuf:"bytes,3,opt,name=label,proto3" json:"label,omitempty"`
	Points   int32                  `protobuf:"varint,4,opt,name=points,proto3" json:"points,omitempty"`
	// 日付は YYYY-MM-DD 形式。時刻成分は持たない。
	Date          string `protobuf:"bytes,5,opt,name=date,proto3" json:"date,omitempty"`
	Store         string `protobuf:"bytes,6,opt,name=store,proto3" json:"store,omitempty"`
	Reason        string `protobuf:"bytes,7,opt,name=reason,proto3" json:"reason,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Infraction) Reset() {
	*x = Infraction{}
	mi := &file_roster_v1_roster_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Infraction) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Infraction) ProtoMessage() {}

func (x *Infraction) ProtoReflect() protoreflect.Message {
	mi := &file_roster_v1_roster_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Infraction.ProtoReflect.Descriptor instead.
func (*Infraction) Descriptor() ([]byte, []int) {
	return file_roster_v1_roster_proto_rawDescGZIP(), []int{0}
}

func (x *Infraction) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Infraction) GetCategory() InfractionCategory {
	if x != nil {
		return x.Category
	}
	return InfractionCategory_INFRACTION_CATEGORY_UNSPECIFIED
}

func (x *Infraction) GetLabel() string {
	if x != nil {
		return x.Label
	}
	return ""
}

func (x *Infraction) GetPoints() int32 {
	if x != nil {
		return x.Points
	}
	return 0
}

func (x *Infraction) GetDate() string {
	if x != nil {
		return x.Date
	}
	return ""
}

func (x *Infraction) GetStore() string {
	if x != nil {
		return x.Store
	}
	return ""
}

func (x *Infraction) GetReason() string {
	if x != nil {
		return x.Reason
	}
	return ""
}

type Employee struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	Id    string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	// 数字のみの外部識別子。未設定の場合は空。
	EmployeeNumber string        `protobuf:"bytes,2,opt,name=employee_number,json=employeeNumber,proto3" json:"employee_number,omitempty"`
	Name           string        `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
	Infractions    []*Infraction `protobuf:"bytes,4,rep,name=infractions,proto3" json:"infractions,omitempty"`
	TotalPoints    int32         `protobuf:"varint,5,opt,name=total_points,json=totalPoints,proto3" json:"total_points,omitempty"`
	Standing       Standing      `protobuf:"varint,6,opt,name=standing,proto3,enum=kintai.roster.v1.Standing" json:"standing,omitempty"`
	StandingLabel  string        `protobuf:"bytes,7,opt,name=standing_label,json=standingLabel,proto3" json:"standing_label,omitempty"`
	Tone           string        `protobuf:"bytes,8,opt,name=tone,proto3" json:"tone,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *Employee) Reset() {
	*x = Employee{}
	mi := &file_roster_v1_roster_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Employee) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Employee) ProtoMessage() {}

func (x *Employee) ProtoReflect() protoreflect.Message {
	mi := &file_roster_v1_roster_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Employee.ProtoReflect.Descriptor instead.
func (*Employee) Descriptor() ([]byte, []int) {
	return file_roster_v1_roster_proto_rawDescGZIP(), []int{1}
}

func (x *Employee) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Employee) GetEmployeeNumber() string {
	if x != nil {
		return x.EmployeeNumber
	}
	return ""
}

func (x *Employee) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Employee) GetInfractions() []*Infraction {
	if x != nil {
		return x.Infractions
	}
	return nil
}

func (x *Employee) GetTotalPoints() int32 {
	if x != nil {
		return x.TotalPoints
	}
	return 0
}

func (x *Employee) GetStanding() Standing {
	if x != nil {
		return x.Standing
	}
	return Standing_STANDING_UNSPECIFIED
}

func (x *Employee) GetStandingLabel() string {
	if x != nil {
		return x.StandingLabel
	}
	return ""
}

func (x *Employee) GetTone() string {
	if x != nil {
		return x.Tone
	}
	return ""
}

type AddEmployeeRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Name           string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	EmployeeNumber string                 `protobuf:"bytes,2,opt,name=employee_number,json=employeeNumber,proto3" json:"employee_number,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *AddEmployeeRequest) Reset() {
	*x = AddEmployeeRequest{}
	mi := &file_roster_v1_roster_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AddEmployeeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AddEmployeeRequest) ProtoMessage() {}

func (x *AddEmployeeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_roster_v1_roster_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AddEmployeeRequest.ProtoReflect.Descriptor instead.
func (*AddEmployeeRequest) Descriptor() ([]byte, []int) {
	return file_roster_v1_roster_proto_rawDescGZIP(), []int{2}
}

func (x *AddEmployeeRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *AddEmployeeRequest) GetEmployeeNumber() string {
	if x != nil {
		return x.EmployeeNumber
	}
	return ""
}

type AddEmployeeResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Employee      *Employee              `protobuf:"bytes,1,opt,name=employee,proto3" json:"employee,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AddEmployeeResponse) Reset() {
	*x = AddEmployeeResponse{}
	mi := &file_roster_v1_roster_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AddEmployeeResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AddEmployeeResponse) ProtoMessage() {}

func (x *AddEmployeeResponse) ProtoReflect() protoreflect.Message {
	mi := &file_roster_v1_roster_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AddEmployeeResponse.ProtoReflect.Descriptor instead.
func (*AddEmployeeResponse) Descriptor() ([]byte, []int) {
	return file_roster_v1_roster_proto_rawDescGZIP(), []int{3}
}

func (x *AddEmployeeResponse) GetEmployee() *Employee {
	if x != nil {
		return x.Employee
	}
	return nil
}

type RenameEmployeeRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RenameEmployeeRequest) Reset() {
	*x = RenameEmployeeRequest{}
	mi := &file_roster_v1_roster_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RenameEmployeeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RenameEmployeeRequest) ProtoMessage() {}

func (x *RenameEmployeeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_roster_v1_roster_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RenameEmployeeRequest.ProtoReflect.Descriptor instead.
func (*RenameEmployeeRequest) Descriptor() ([]byte, []int) {
	return file_roster_v1_roster_proto_rawDescGZIP(), []int{4}
}

func (x *RenameEmployeeRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *RenameEmployeeRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

type RenameEmployeeResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Employee      *Employee              `protobuf:"bytes,1,opt,name=employee,proto3" json:"employee,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RenameEmployeeResponse) Reset() {
	*x = RenameEmployeeResponse{}
	mi := &file_roster_v1_roster_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RenameEmployeeResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RenameEmployeeResponse) ProtoMessage() {}

func (x *RenameEmployeeResponse) ProtoReflect() protoreflect.Message {
	mi := &file_roster_v1_roster_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RenameEmployeeResponse.ProtoReflect.Descriptor instead.
func (*RenameEmployeeResponse) Descriptor() ([]byte, []int) {
	return file_roster_v1_roster_proto_rawDescGZIP(), []int{5}
}

func (x *RenameEmployeeResponse) GetEmployee() *Employee {
	if x != nil {
		return x.Employee
	}
	return nil
}

type SetEmployeeNumberRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	Id    string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	// 任意の文字列。数字以外は取り除かれ、数字が残らなければ番号を消去する。
	Raw           string `protobuf:"bytes,2,opt,name=raw,proto3" json:"raw,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetEmployeeNumberRequest) Reset() {
	*x = SetEmployeeNumberRequest{}
	mi := &file_roster_v1_roster_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetEmployeeNumberRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetEmployeeNumberRequest) ProtoMessage() {}

func (x *SetEmployeeNumberRequest) ProtoReflect() protoreflect.Message {
	mi := &file_roster_v1_roster_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetEmployeeNumberRequest.ProtoReflect.Descriptor instead.
func (*SetEmployeeNumberRequest) Descriptor() ([]byte, []int) {
	return file_roster_v1_roster_proto_rawDescGZIP(), []int{6}
}

func (x *SetEmployeeNumberRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *SetEmployeeNumberRequest) GetRaw() string {
	if x != nil {
		return x.Raw
	}
	return ""
}

type SetEmployeeNumberResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Employee      *Employee              `protobuf:"bytes,1,opt,name=employee,proto3" json:"employee,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetEmployeeNumberResponse) Reset() {
	*x = SetEmployeeNumberResponse{}
	mi := &file_roster_v1_roster_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetEmployeeNumberResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetEmployeeNumberResponse) ProtoMessage() {}

func (x *SetEmployeeNumberResponse) ProtoReflect() protoreflect.Message {
	mi := &file_roster_v1_roster_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetEmployeeNumberResponse.ProtoReflect.Descriptor instead.
func (*SetEmployeeNumberResponse) Descriptor() ([]byte, []int) {
	return file_roster_v1_roster_proto_rawDescGZIP(), []int{7}
}

func (x *SetEmployeeNumberResponse) GetEmployee() *Employee {
	if x != nil {
		return x.Employee
	}
	return nil
}

type DeleteEmployeeRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteEmployeeRequest) Reset() {
	*x = DeleteEmployeeRequest{}
	mi := &file_roster_v1_roster_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteEmployeeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteEmployeeRequest) ProtoMessage() {}

func (x *DeleteEmployeeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_roster_v1_roster_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteEmployeeRequest.ProtoReflect.Descriptor instead.
func (*DeleteEmployeeRequest) Descriptor() ([]byte, []int) {
	return file_roster_v1_roster_proto_rawDescGZIP(), []int{8}
}

func (x *DeleteEmployeeRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type DeleteEmployeeResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteEmployeeResponse) Reset() {
	*x = DeleteEmployeeResponse{}
	mi := &file_roster_v1_roster_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteEmployeeResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteEmployeeResponse) ProtoMessage() {}

func (x *DeleteEmployeeResponse) ProtoReflect() protoreflect.Message {
	mi := &file_roster_v1_roster_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteEmployeeResponse.ProtoReflect.Descriptor instead.
func (*DeleteEmployeeResponse) Descriptor() ([]byte, []int) {
	return file_roster_v1_roster_proto_rawDescGZIP(), []int{9}
}

type AddInfractionRequest struct {
	state      protoimpl.MessageState `protogen:"open.v1"`
	EmployeeId string                 `protobuf:"bytes,1,opt,name=employee_id,json=employeeId,proto3" json:"employee_id,omitempty"`
	Category   InfractionCategory     `protobuf:"varint,2,opt,name=category,proto3,enum=kintai.roster.v1.InfractionCategory" json:"category,omitempty"`
	// YYYY-MM-DD。空の場合は当日扱い。
	Date          string `protobuf:"bytes,3,opt,name=date,proto3" json:"date,omitempty"`
	Store         string `protobuf:"bytes,4,opt,name=store,proto3" json:"store,omitempty"`
	Reason        string `protobuf:"bytes,5,opt,name=reason,proto3" json:"reason,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AddInfractionRequest) Reset() {
	*x = AddInfractionRequest{}
	mi := &file_roster_v1_roster_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AddInfractionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AddInfractionRequest) ProtoMessage() {}

func (x *AddInfractionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_roster_v1_roster_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AddInfractionRequest.ProtoReflect.Descriptor instead.
func (*AddInfractionRequest) Descriptor() ([]byte, []int) {
	return file_roster_v1_roster_proto_rawDescGZIP(), []int{10}
}

func (x *AddInfractionRequest) GetEmployeeId() string {
	if x != nil {
		return x.EmployeeId
	}
	return ""
}

func (x *AddInfractionRequest) GetCategory() InfractionCategory {
	if x != nil {
		return x.Category
	}
	return InfractionCategory_INFRACTION_CATEGORY_UNSPECIFIED
}

func (x *AddInfractionRequest) GetDate() string {
	if x != nil {
		return x.Date
	}
	return ""
}

func (x *AddInfractionRequest) GetStore() string {
	if x != nil {
		return x.Store
	}
	return ""
}

func (x *AddInfractionRequest) GetReason() string {
	if x != nil {
		return x.Reason
	}
	return ""
}

type AddInfractionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Employee      *Employee              `protobuf:"bytes,1,opt,name=employee,proto3" json:"employee,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AddInfractionResponse) Reset() {
	*x = AddInfractionResponse{}
	mi := &file_roster_v1_roster_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AddInfractionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AddInfractionResponse) ProtoMessage() {}

func (x *AddInfractionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_roster_v1_roster_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AddInfractionResponse.ProtoReflect.Descriptor instead.
func (*AddInfractionResponse) Descriptor() ([]byte, []int) {
	return file_roster_v1_roster_proto_rawDescGZIP(), []int{11}
}

func (x *AddInfractionResponse) GetEmployee() *Employee {
	if x != nil {
		return x.Employee
	}
	return nil
}

type DeleteInfractionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	EmployeeId    string                 `protobuf:"bytes,1,opt,name=employee_id,json=employeeId,proto3" json:"employee_id,omitempty"`
	InfractionId  string                 `protobuf:"bytes,2,opt,name=infraction_id,json=infractionId,proto3" json:"infraction_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteInfractionRequest) Reset() {
	*x = DeleteInfractionRequest{}
	mi := &file_roster_v1_roster_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteInfractionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteInfractionRequest) ProtoMessage() {}

func (x *DeleteInfractionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_roster_v1_roster_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteInfractionRequest.ProtoReflect.Descriptor instead.
func (*DeleteInfractionRequest) Descriptor() ([]byte, []int) {
	return file_roster_v1_roster_proto_rawDescGZIP(), []int{12}
}

func (x *DeleteInfractionRequest) GetEmployeeId() string {
	if x != nil {
		return x.EmployeeId
	}
	return ""
}

func (x *DeleteInfractionRequest) GetInfractionId() string {
	if x != nil {
		return x.InfractionId
	}
	return ""
}

type DeleteInfractionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Employee      *Employee              `protobuf:"bytes,1,opt,name=employee,proto3" json:"employee,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteInfractionResponse) Reset() {
	*x = DeleteInfractionResponse{}
	mi := &file_roster_v1_roster_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteInfractionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteInfractionResponse) ProtoMessage() {}

func (x *DeleteInfractionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_roster_v1_roster_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteInfractionResponse.ProtoReflect.Descriptor instead.
func (*DeleteInfractionResponse) Descriptor() ([]byte, []int) {
	return file_roster_v1_roster_proto_rawDescGZIP(), []int{13}
}

func (x *DeleteInfractionResponse) GetEmployee() *Employee {
	if x != nil {
		return x.Employee
	}
	return nil
}

type GetEmployeeRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetEmployeeRequest) Reset() {
	*x = GetEmployeeRequest{}
	mi := &file_roster_v1_roster_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetEmployeeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetEmployeeRequest) ProtoMessage() {}

func (x *GetEmployeeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_roster_v1_roster_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetEmployeeRequest.ProtoReflect.Descriptor instead.
func (*GetEmployeeRequest) Descriptor() ([]byte, []int) {
	return file_roster_v1_roster_proto_rawDescGZIP(), []int{14}
}

func (x *GetEmployeeRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type GetEmployeeResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Employee      *Employee              `protobuf:"bytes,1,opt,name=employee,proto3" json:"employee,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetEmployeeResponse) Reset() {
	*x = GetEmployeeResponse{}
	mi := &file_roster_v1_roster_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetEmployeeResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetEmployeeResponse) ProtoMessage() {}

func (x *GetEmployeeResponse) ProtoReflect() protoreflect.Message {
	mi := &file_roster_v1_roster_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetEmployeeResponse.ProtoReflect.Descriptor instead.
func (*GetEmployeeResponse) Descriptor() ([]byte, []int) {
	return file_roster_v1_roster_proto_rawDescGZIP(), []int{15}
}

func (x *GetEmployeeResponse) GetEmployee() *Employee {
	if x != nil {
		return x.Employee
	}
	return nil
}

type ListEmployeesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListEmployeesRequest) Reset() {
	*x = ListEmployeesRequest{}
	mi := &file_roster_v1_roster_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListEmployeesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListEmployeesRequest) ProtoMessage() {}

func (x *ListEmployeesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_roster_v1_roster_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListEmployeesRequest.ProtoReflect.Descriptor instead.
func (*ListEmployeesRequest) Descriptor() ([]byte, []int) {
	return file_roster_v1_roster_proto_rawDescGZIP(), []int{16}
}

type ListEmployeesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Employees     []*Employee            `protobuf:"bytes,1,rep,name=employees,proto3" json:"employees,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListEmployeesResponse) Reset() {
	*x = ListEmployeesResponse{}
	mi := &file_roster_v1_roster_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListEmployeesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListEmployeesResponse) ProtoMessage() {}

func (x *ListEmployeesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_roster_v1_roster_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListEmployeesResponse.ProtoReflect.Descriptor instead.
func (*ListEmployeesResponse) Descriptor() ([]byte, []int) {
	return file_roster_v1_roster_proto_rawDescGZIP(), []int{17}
}

func (x *ListEmployeesResponse) GetEmployees() []*Employee {
	if x != nil {
		return x.Employees
	}
	return nil
}

var File_roster_v1_roster_proto protoreflect.FileDescriptor

const file_roster_v1_roster_proto_rawDesc = "" +
	"\n" +
	"\x16roster/v1/roster.proto\x12\x10kintai.roster.v1\"\xce\x01\n" +
	"\n" +
	"Infraction\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12@\n" +
	"\bcategory\x18\x02 \x01(\x0e2$.kintai.roster.v1.InfractionCategoryR\bcategory\x12\x14\n" +
	"\x05label\x18\x03 \x01(\tR\x05label\x12\x16\n" +
	"\x06points\x18\x04 \x01(\x05R\x06points\x12\x12\n" +
	"\x04date\x18\x05 \x01(\tR\x04date\x12\x14\n" +
	"\x05store\x18\x06 \x01(\tR\x05store\x12\x16\n" +
	"\x06reason\x18\a \x01(\tR\x06reason\"\xad\x02\n" +
	"\bEmployee\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12'\n" +
	"\x0femployee_number\x18\x02 \x01(\tR\x0eemployeeNumber\x12\x12\n" +
	"\x04name\x18\x03 \x01(\tR\x04name\x12>\n" +
	"\vinfractions\x18\x04 \x03(\v2\x1c.kintai.roster.v1.InfractionR\vinfractions\x12!\n" +
	"\ftotal_points\x18\x05 \x01(\x05R\vtotalPoints\x126\n" +
	"\bstanding\x18\x06 \x01(\x0e2\x1a.kintai.roster.v1.StandingR\bstanding\x12%\n" +
	"\x0estanding_label\x18\a \x01(\tR\rstandingLabel\x12\x12\n" +
	"\x04tone\x18\b \x01(\tR\x04tone\"Q\n" +
	"\x12AddEmployeeRequest\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12'\n" +
	"\x0femployee_number\x18\x02 \x01(\tR\x0eemployeeNumber\"M\n" +
	"\x13AddEmployeeResponse\x126\n" +
	"\bemployee\x18\x01 \x01(\v2\x1a.kintai.roster.v1.EmployeeR\bemployee\";\n" +
	"\x15RenameEmployeeRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\"P\n" +
	"\x16RenameEmployeeResponse\x126\n" +
	"\bemployee\x18\x01 \x01(\v2\x1a.kintai.roster.v1.EmployeeR\bemployee\"<\n" +
	"\x18SetEmployeeNumberRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x10\n" +
	"\x03raw\x18\x02 \x01(\tR\x03raw\"S\n" +
	"\x19SetEmployeeNumberResponse\x126\n" +
	"\bemployee\x18\x01 \x01(\v2\x1a.kintai.roster.v1.EmployeeR\bemployee\"'\n" +
	"\x15DeleteEmployeeRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"\x18\n" +
	"\x16DeleteEmployeeResponse\"\xbb\x01\n" +
	"\x14AddInfractionRequest\x12\x1f\n" +
	"\vemployee_id\x18\x01 \x01(\tR\n" +
	"employeeId\x12@\n" +
	"\bcategory\x18\x02 \x01(\x0e2$.kintai.roster.v1.InfractionCategoryR\bcategory\x12\x12\n" +
	"\x04date\x18\x03 \x01(\tR\x04date\x12\x14\n" +
	"\x05store\x18\x04 \x01(\tR\x05store\x12\x16\n" +
	"\x06reason\x18\x05 \x01(\tR\x06reason\"O\n" +
	"\x15AddInfractionResponse\x126\n" +
	"\bemployee\x18\x01 \x01(\v2\x1a.kintai.roster.v1.EmployeeR\bemployee\"_\n" +
	"\x17DeleteInfractionRequest\x12\x1f\n" +
	"\vemployee_id\x18\x01 \x01(\tR\n" +
	"employeeId\x12#\n" +
	"\rinfraction_id\x18\x02 \x01(\tR\finfractionId\"R\n" +
	"\x18DeleteInfractionResponse\x126\n" +
	"\bemployee\x18\x01 \x01(\v2\x1a.kintai.roster.v1.EmployeeR\bemployee\"$\n" +
	"\x12GetEmployeeRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"M\n" +
	"\x13GetEmployeeResponse\x126\n" +
	"\bemployee\x18\x01 \x01(\v2\x1a.kintai.roster.v1.EmployeeR\bemployee\"\x16\n" +
	"\x14ListEmployeesRequest\"Q\n" +
	"\x15ListEmployeesResponse\x128\n" +
	"\temployees\x18\x01 \x03(\v2\x1a.kintai.roster.v1.EmployeeR\temployees*\xb3\x03\n" +
	"\x12InfractionCategory\x12#\n" +
	"\x1fINFRACTION_CATEGORY_UNSPECIFIED\x10\x00\x12&\n" +
	"\"INFRACTION_CATEGORY_CALL_OUT_PRIOR\x10\x01\x12,\n" +
	"(INFRACTION_CATEGORY_CALL_OUT_AFTER_START\x10\x02\x12'\n" +
	"#INFRACTION_CATEGORY_NO_CALL_NO_SHOW\x10\x03\x12#\n" +
	"\x1fINFRACTION_CATEGORY_TARDY_SHORT\x10\x04\x12\"\n" +
	"\x1eINFRACTION_CATEGORY_TARDY_LONG\x10\x05\x12-\n" +
	")INFRACTION_CATEGORY_EARLY_DEPARTURE_SHORT\x10\x06\x12,\n" +
	"(INFRACTION_CATEGORY_EARLY_DEPARTURE_LONG\x10\a\x12)\n" +
	"%INFRACTION_CATEGORY_LATE_RETURN_SHORT\x10\b\x12(\n" +
	"$INFRACTION_CATEGORY_LATE_RETURN_LONG\x10\t*\x97\x01\n" +
	"\bStanding\x12\x18\n" +
	"\x14STANDING_UNSPECIFIED\x10\x00\x12\x0f\n" +
	"\vSTANDING_OK\x10\x01\x12\"\n" +
	"\x1eSTANDING_FIRST_WRITTEN_WARNING\x10\x02\x12\"\n" +
	"\x1eSTANDING_FINAL_WRITTEN_WARNING\x10\x03\x12\x18\n" +
	"\x14STANDING_TERMINATION\x10\x042\xae\x06\n" +
	"\rRosterService\x12Z\n" +
	"\vAddEmployee\x12$.kintai.roster.v1.AddEmployeeRequest\x1a%.kintai.roster.v1.AddEmployeeResponse\x12c\n" +
	"\x0eRenameEmployee\x12'.kintai.roster.v1.RenameEmployeeRequest\x1a(.kintai.roster.v1.RenameEmployeeResponse\x12l\n" +
	"\x11SetEmployeeNumber\x12*.kintai.roster.v1.SetEmployeeNumberRequest\x1a+.kintai.roster.v1.SetEmployeeNumberResponse\x12c\n" +
	"\x0eDeleteEmployee\x12'.kintai.roster.v1.DeleteEmployeeRequest\x1a(.kintai.roster.v1.DeleteEmployeeResponse\x12`\n" +
	"\rAddInfraction\x12&.kintai.roster.v1.AddInfractionRequest\x1a'.kintai.roster.v1.AddInfractionResponse\x12i\n" +
	"\x10DeleteInfraction\x12).kintai.roster.v1.DeleteInfractionRequest\x1a*.kintai.roster.v1.DeleteInfractionResponse\x12Z\n" +
	"\vGetEmployee\x12$.kintai.roster.v1.GetEmployeeRequest\x1a%.kintai.roster.v1.GetEmployeeResponse\x12`\n" +
	"\rListEmployees\x12&.kintai.roster.v1.ListEmployeesRequest\x1a'.kintai.roster.v1.ListEmployeesResponseBTZRgithub.com/ogurasousui/kintai-points/internal/adapters/grpc/gen/roster/v1;rosterpbb\x06proto3"

var (
	file_roster_v1_roster_proto_rawDescOnce sync.Once
	file_roster_v1_roster_proto_rawDescData []byte
)

func file_roster_v1_roster_proto_rawDescGZIP() []byte {
	file_roster_v1_roster_proto_rawDescOnce.Do(func() {
		file_roster_v1_roster_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_roster_v1_roster_proto_rawDesc), len(file_roster_v1_roster_proto_rawDesc)))
	})
	return file_roster_v1_roster_proto_rawDescData
}

var file_roster_v1_roster_proto_enumTypes = make([]protoimpl.EnumInfo, 2)
var file_roster_v1_roster_proto_msgTypes = make([]protoimpl.MessageInfo, 18)
var file_roster_v1_roster_proto_goTypes = []any{
	(InfractionCategory)(0),           // 0: kintai.roster.v1.InfractionCategory
	(Standing)(0),                     // 1: kintai.roster.v1.Standing
	(*Infraction)(nil),                // 2: kintai.roster.v1.Infraction
	(*Employee)(nil),                  // 3: kintai.roster.v1.Employee
	(*AddEmployeeRequest)(nil),        // 4: kintai.roster.v1.AddEmployeeRequest
	(*AddEmployeeResponse)(nil),       // 5: kintai.roster.v1.AddEmployeeResponse
	(*RenameEmployeeRequest)(nil),     // 6: kintai.roster.v1.RenameEmployeeRequest
	(*RenameEmployeeResponse)(nil),    // 7: kintai.roster.v1.RenameEmployeeResponse
	(*SetEmployeeNumberRequest)(nil),  // 8: kintai.roster.v1.SetEmployeeNumberRequest
	(*SetEmployeeNumberResponse)(nil), // 9: kintai.roster.v1.SetEmployeeNumberResponse
	(*DeleteEmployeeRequest)(nil),     // 10: kintai.roster.v1.DeleteEmployeeRequest
	(*DeleteEmployeeResponse)(nil),    // 11: kintai.roster.v1.DeleteEmployeeResponse
	(*AddInfractionRequest)(nil),      // 12: kintai.roster.v1.AddInfractionRequest
	(*AddInfractionResponse)(nil),     // 13: kintai.roster.v1.AddInfractionResponse
	(*DeleteInfractionRequest)(nil),   // 14: kintai.roster.v1.DeleteInfractionRequest
	(*DeleteInfractionResponse)(nil),  // 15: kintai.roster.v1.DeleteInfractionResponse
	(*GetEmployeeRequest)(nil),        // 16: kintai.roster.v1.GetEmployeeRequest
	(*GetEmployeeResponse)(nil),       // 17: kintai.roster.v1.GetEmployeeResponse
	(*ListEmployeesRequest)(nil),      // 18: kintai.roster.v1.ListEmployeesRequest
	(*ListEmployeesResponse)(nil),     // 19: kintai.roster.v1.ListEmployeesResponse
}
var file_roster_v1_roster_proto_depIdxs = []int32{
	0,  // 0: kintai.roster.v1.Infraction.category:type_name -> kintai.roster.v1.InfractionCategory
	2,  // 1: kintai.roster.v1.Employee.infractions:type_name -> kintai.roster.v1.Infraction
	1,  // 2: kintai.roster.v1.Employee.standing:type_name -> kintai.roster.v1.Standing
	3,  // 3: kintai.roster.v1.AddEmployeeResponse.employee:type_name -> kintai.roster.v1.Employee
	3,  // 4: kintai.roster.v1.RenameEmployeeResponse.employee:type_name -> kintai.roster.v1.Employee
	3,  // 5: kintai.roster.v1.SetEmployeeNumberResponse.employee:type_name -> kintai.roster.v1.Employee
	0,  // 6: kintai.roster.v1.AddInfractionRequest.category:type_name -> kintai.roster.v1.InfractionCategory
	3,  // 7: kintai.roster.v1.AddInfractionResponse.employee:type_name -> kintai.roster.v1.Employee
	3,  // 8: kintai.roster.v1.DeleteInfractionResponse.employee:type_name -> kintai.roster.v1.Employee
	3,  // 9: kintai.roster.v1.GetEmployeeResponse.employee:type_name -> kintai.roster.v1.Employee
	3,  // 10: kintai.roster.v1.ListEmployeesResponse.employees:type_name -> kintai.roster.v1.Employee
	4,  // 11: kintai.roster.v1.RosterService.AddEmployee:input_type -> kintai.roster.v1.AddEmployeeRequest
	6,  // 12: kintai.roster.v1.RosterService.RenameEmployee:input_type -> kintai.roster.v1.RenameEmployeeRequest
	8,  // 13: kintai.roster.v1.RosterService.SetEmployeeNumber:input_type -> kintai.roster.v1.SetEmployeeNumberRequest
	10, // 14: kintai.roster.v1.RosterService.DeleteEmployee:input_type -> kintai.roster.v1.DeleteEmployeeRequest
	12, // 15: kintai.roster.v1.RosterService.AddInfraction:input_type -> kintai.roster.v1.AddInfractionRequest
	14, // 16: kintai.roster.v1.RosterService.DeleteInfraction:input_type -> kintai.roster.v1.DeleteInfractionRequest
	16, // 17: kintai.roster.v1.RosterService.GetEmployee:input_type -> kintai.roster.v1.GetEmployeeRequest
	18, // 18: kintai.roster.v1.RosterService.ListEmployees:input_type -> kintai.roster.v1.ListEmployeesRequest
	5,  // 19: kintai.roster.v1.RosterService.AddEmployee:output_type -> kintai.roster.v1.AddEmployeeResponse
	7,  // 20: kintai.roster.v1.RosterService.RenameEmployee:output_type -> kintai.roster.v1.RenameEmployeeResponse
	9,  // 21: kintai.roster.v1.RosterService.SetEmployeeNumber:output_type -> kintai.roster.v1.SetEmployeeNumberResponse
	11, // 22: kintai.roster.v1.RosterService.DeleteEmployee:output_type -> kintai.roster.v1.DeleteEmployeeResponse
	13, // 23: kintai.roster.v1.RosterService.AddInfraction:output_type -> kintai.roster.v1.AddInfractionResponse
	15, // 24: kintai.roster.v1.RosterService.DeleteInfraction:output_type -> kintai.roster.v1.DeleteInfractionResponse
	17, // 25: kintai.roster.v1.RosterService.GetEmployee:output_type -> kintai.roster.v1.GetEmployeeResponse
	19, // 26: kintai.roster.v1.RosterService.ListEmployees:output_type -> kintai.roster.v1.ListEmployeesResponse
	19, // [19:27] is the sub-list for method output_type
	11, // [11:19] is the sub-list for method input_type
	11, // [11:11] is the sub-list for extension type_name
	11, // [11:11] is the sub-list for extension extendee
	0,  // [0:11] is the sub-list for field type_name
}

func init() { file_roster_v1_roster_proto_init() }
func file_roster_v1_roster_proto_init() {
	if File_roster_v1_roster_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_roster_v1_roster_proto_rawDesc), len(file_roster_v1_roster_proto_rawDesc)),
			NumEnums:      2,
			NumMessages:   18,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_roster_v1_roster_proto_goTypes,
		DependencyIndexes: file_roster_v1_roster_proto_depIdxs,
		EnumInfos:         file_roster_v1_roster_proto_enumTypes,
		MessageInfos:      file_roster_v1_roster_proto_msgTypes,
	}.Build()
	File_roster_v1_roster_proto = out.File
	file_roster_v1_roster_proto_goTypes = nil
	file_roster_v1_roster_proto_depIdxs = nil
}
