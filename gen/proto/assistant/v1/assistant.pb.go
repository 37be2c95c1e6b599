// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: assistant/v1/assistant.proto

package assistantv1

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

type Document struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	FileExt       string                 `protobuf:"bytes,3,opt,name=file_ext,json=fileExt,proto3" json:"file_ext,omitempty"`
	FileSize      int64                  `protobuf:"varint,4,opt,name=file_size,json=fileSize,proto3" json:"file_size,omitempty"`
	PageCount     int32                  `protobuf:"varint,5,opt,name=page_count,json=pageCount,proto3" json:"page_count,omitempty"`
	Status        string                 `protobuf:"bytes,6,opt,name=status,proto3" json:"status,omitempty"`
	UploadedAt    string                 `protobuf:"bytes,7,opt,name=uploaded_at,json=uploadedAt,proto3" json:"uploaded_at,omitempty"` // RFC3339
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Document) Reset() {
	*x = Document{}
	mi := &file_assistant_v1_assistant_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Document) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Document) ProtoMessage() {}

func (x *Document) ProtoReflect() protoreflect.Message {
	mi := &file_assistant_v1_assistant_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Document.ProtoReflect.Descriptor instead.
func (*Document) Descriptor() ([]byte, []int) {
	return file_assistant_v1_assistant_proto_rawDescGZIP(), []int{0}
}

func (x *Document) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Document) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *Document) GetFileExt() string {
	if x != nil {
		return x.FileExt
	}
	return ""
}

func (x *Document) GetFileSize() int64 {
	if x != nil {
		return x.FileSize
	}
	return 0
}

func (x *Document) GetPageCount() int32 {
	if x != nil {
		return x.PageCount
	}
	return 0
}

func (x *Document) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Document) GetUploadedAt() string {
	if x != nil {
		return x.UploadedAt
	}
	return ""
}

type UploadDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Filename      string                 `protobuf:"bytes,1,opt,name=filename,proto3" json:"filename,omitempty"`
	Data          []byte                 `protobuf:"bytes,2,opt,name=data,proto3" json:"data,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadDocumentRequest) Reset() {
	*x = UploadDocumentRequest{}
	mi := &file_assistant_v1_assistant_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadDocumentRequest) ProtoMessage() {}

func (x *UploadDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_assistant_v1_assistant_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadDocumentRequest.ProtoReflect.Descriptor instead.
func (*UploadDocumentRequest) Descriptor() ([]byte, []int) {
	return file_assistant_v1_assistant_proto_rawDescGZIP(), []int{1}
}

func (x *UploadDocumentRequest) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *UploadDocumentRequest) GetData() []byte {
	if x != nil {
		return x.Data
	}
	return nil
}

type UploadDocumentResponse struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Document       *Document              `protobuf:"bytes,1,opt,name=document,proto3" json:"document,omitempty"`
	Deduplicated   bool                   `protobuf:"varint,2,opt,name=deduplicated,proto3" json:"deduplicated,omitempty"`
	ContentHashHex string                 `protobuf:"bytes,3,opt,name=content_hash_hex,json=contentHashHex,proto3" json:"content_hash_hex,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *UploadDocumentResponse) Reset() {
	*x = UploadDocumentResponse{}
	mi := &file_assistant_v1_assistant_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadDocumentResponse) ProtoMessage() {}

func (x *UploadDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_assistant_v1_assistant_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadDocumentResponse.ProtoReflect.Descriptor instead.
func (*UploadDocumentResponse) Descriptor() ([]byte, []int) {
	return file_assistant_v1_assistant_proto_rawDescGZIP(), []int{2}
}

func (x *UploadDocumentResponse) GetDocument() *Document {
	if x != nil {
		return x.Document
	}
	return nil
}

func (x *UploadDocumentResponse) GetDeduplicated() bool {
	if x != nil {
		return x.Deduplicated
	}
	return false
}

func (x *UploadDocumentResponse) GetContentHashHex() string {
	if x != nil {
		return x.ContentHashHex
	}
	return ""
}

type GetDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	IncludeText   bool                   `protobuf:"varint,2,opt,name=include_text,json=includeText,proto3" json:"include_text,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDocumentRequest) Reset() {
	*x = GetDocumentRequest{}
	mi := &file_assistant_v1_assistant_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDocumentRequest) ProtoMessage() {}

func (x *GetDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_assistant_v1_assistant_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDocumentRequest.ProtoReflect.Descriptor instead.
func (*GetDocumentRequest) Descriptor() ([]byte, []int) {
	return file_assistant_v1_assistant_proto_rawDescGZIP(), []int{3}
}

func (x *GetDocumentRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *GetDocumentRequest) GetIncludeText() bool {
	if x != nil {
		return x.IncludeText
	}
	return false
}

type GetDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Document      *Document              `protobuf:"bytes,1,opt,name=document,proto3" json:"document,omitempty"`
	Text          string                 `protobuf:"bytes,2,opt,name=text,proto3" json:"text,omitempty"` // only when include_text is set
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDocumentResponse) Reset() {
	*x = GetDocumentResponse{}
	mi := &file_assistant_v1_assistant_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDocumentResponse) ProtoMessage() {}

func (x *GetDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_assistant_v1_assistant_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDocumentResponse.ProtoReflect.Descriptor instead.
func (*GetDocumentResponse) Descriptor() ([]byte, []int) {
	return file_assistant_v1_assistant_proto_rawDescGZIP(), []int{4}
}

func (x *GetDocumentResponse) GetDocument() *Document {
	if x != nil {
		return x.Document
	}
	return nil
}

func (x *GetDocumentResponse) GetText() string {
	if x != nil {
		return x.Text
	}
	return ""
}

type ListDocumentsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDocumentsRequest) Reset() {
	*x = ListDocumentsRequest{}
	mi := &file_assistant_v1_assistant_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDocumentsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDocumentsRequest) ProtoMessage() {}

func (x *ListDocumentsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_assistant_v1_assistant_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDocumentsRequest.ProtoReflect.Descriptor instead.
func (*ListDocumentsRequest) Descriptor() ([]byte, []int) {
	return file_assistant_v1_assistant_proto_rawDescGZIP(), []int{5}
}

type ListDocumentsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Documents     []*Document            `protobuf:"bytes,1,rep,name=documents,proto3" json:"documents,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDocumentsResponse) Reset() {
	*x = ListDocumentsResponse{}
	mi := &file_assistant_v1_assistant_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDocumentsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDocumentsResponse) ProtoMessage() {}

func (x *ListDocumentsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_assistant_v1_assistant_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDocumentsResponse.ProtoReflect.Descriptor instead.
func (*ListDocumentsResponse) Descriptor() ([]byte, []int) {
	return file_assistant_v1_assistant_proto_rawDescGZIP(), []int{6}
}

func (x *ListDocumentsResponse) GetDocuments() []*Document {
	if x != nil {
		return x.Documents
	}
	return nil
}

type DeleteDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteDocumentRequest) Reset() {
	*x = DeleteDocumentRequest{}
	mi := &file_assistant_v1_assistant_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteDocumentRequest) ProtoMessage() {}

func (x *DeleteDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_assistant_v1_assistant_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteDocumentRequest.ProtoReflect.Descriptor instead.
func (*DeleteDocumentRequest) Descriptor() ([]byte, []int) {
	return file_assistant_v1_assistant_proto_rawDescGZIP(), []int{7}
}

func (x *DeleteDocumentRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

type DeleteDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteDocumentResponse) Reset() {
	*x = DeleteDocumentResponse{}
	mi := &file_assistant_v1_assistant_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteDocumentResponse) ProtoMessage() {}

func (x *DeleteDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_assistant_v1_assistant_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteDocumentResponse.ProtoReflect.Descriptor instead.
func (*DeleteDocumentResponse) Descriptor() ([]byte, []int) {
	return file_assistant_v1_assistant_proto_rawDescGZIP(), []int{8}
}

type SummarizeRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SummarizeRequest) Reset() {
	*x = SummarizeRequest{}
	mi := &file_assistant_v1_assistant_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SummarizeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SummarizeRequest) ProtoMessage() {}

func (x *SummarizeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_assistant_v1_assistant_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SummarizeRequest.ProtoReflect.Descriptor instead.
func (*SummarizeRequest) Descriptor() ([]byte, []int) {
	return file_assistant_v1_assistant_proto_rawDescGZIP(), []int{9}
}

func (x *SummarizeRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

type SummarizeResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Summary       string                 `protobuf:"bytes,1,opt,name=summary,proto3" json:"summary,omitempty"`
	Model         string                 `protobuf:"bytes,2,opt,name=model,proto3" json:"model,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SummarizeResponse) Reset() {
	*x = SummarizeResponse{}
	mi := &file_assistant_v1_assistant_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SummarizeResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SummarizeResponse) ProtoMessage() {}

func (x *SummarizeResponse) ProtoReflect() protoreflect.Message {
	mi := &file_assistant_v1_assistant_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SummarizeResponse.ProtoReflect.Descriptor instead.
func (*SummarizeResponse) Descriptor() ([]byte, []int) {
	return file_assistant_v1_assistant_proto_rawDescGZIP(), []int{10}
}

func (x *SummarizeResponse) GetSummary() string {
	if x != nil {
		return x.Summary
	}
	return ""
}

func (x *SummarizeResponse) GetModel() string {
	if x != nil {
		return x.Model
	}
	return ""
}

type QuizQuestion struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Question      string                 `protobuf:"bytes,1,opt,name=question,proto3" json:"question,omitempty"`
	Options       []string               `protobuf:"bytes,2,rep,name=options,proto3" json:"options,omitempty"`
	Answer        string                 `protobuf:"bytes,3,opt,name=answer,proto3" json:"answer,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *QuizQuestion) Reset() {
	*x = QuizQuestion{}
	mi := &file_assistant_v1_assistant_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *QuizQuestion) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*QuizQuestion) ProtoMessage() {}

func (x *QuizQuestion) ProtoReflect() protoreflect.Message {
	mi := &file_assistant_v1_assistant_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use QuizQuestion.ProtoReflect.Descriptor instead.
func (*QuizQuestion) Descriptor() ([]byte, []int) {
	return file_assistant_v1_assistant_proto_rawDescGZIP(), []int{11}
}

func (x *QuizQuestion) GetQuestion() string {
	if x != nil {
		return x.Question
	}
	return ""
}

func (x *QuizQuestion) GetOptions() []string {
	if x != nil {
		return x.Options
	}
	return nil
}

func (x *QuizQuestion) GetAnswer() string {
	if x != nil {
		return x.Answer
	}
	return ""
}

type GenerateQuizRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	NumQuestions  int32                  `protobuf:"varint,2,opt,name=num_questions,json=numQuestions,proto3" json:"num_questions,omitempty"` // default 5
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GenerateQuizRequest) Reset() {
	*x = GenerateQuizRequest{}
	mi := &file_assistant_v1_assistant_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GenerateQuizRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GenerateQuizRequest) ProtoMessage() {}

func (x *GenerateQuizRequest) ProtoReflect() protoreflect.Message {
	mi := &file_assistant_v1_assistant_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GenerateQuizRequest.ProtoReflect.Descriptor instead.
func (*GenerateQuizRequest) Descriptor() ([]byte, []int) {
	return file_assistant_v1_assistant_proto_rawDescGZIP(), []int{12}
}

func (x *GenerateQuizRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *GenerateQuizRequest) GetNumQuestions() int32 {
	if x != nil {
		return x.NumQuestions
	}
	return 0
}

type GenerateQuizResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Questions     []*QuizQuestion        `protobuf:"bytes,1,rep,name=questions,proto3" json:"questions,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GenerateQuizResponse) Reset() {
	*x = GenerateQuizResponse{}
	mi := &file_assistant_v1_assistant_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GenerateQuizResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GenerateQuizResponse) ProtoMessage() {}

func (x *GenerateQuizResponse) ProtoReflect() protoreflect.Message {
	mi := &file_assistant_v1_assistant_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GenerateQuizResponse.ProtoReflect.Descriptor instead.
func (*GenerateQuizResponse) Descriptor() ([]byte, []int) {
	return file_assistant_v1_assistant_proto_rawDescGZIP(), []int{13}
}

func (x *GenerateQuizResponse) GetQuestions() []*QuizQuestion {
	if x != nil {
		return x.Questions
	}
	return nil
}

type AnswerRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	Question      string                 `protobuf:"bytes,2,opt,name=question,proto3" json:"question,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AnswerRequest) Reset() {
	*x = AnswerRequest{}
	mi := &file_assistant_v1_assistant_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AnswerRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AnswerRequest) ProtoMessage() {}

func (x *AnswerRequest) ProtoReflect() protoreflect.Message {
	mi := &file_assistant_v1_assistant_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AnswerRequest.ProtoReflect.Descriptor instead.
func (*AnswerRequest) Descriptor() ([]byte, []int) {
	return file_assistant_v1_assistant_proto_rawDescGZIP(), []int{14}
}

func (x *AnswerRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *AnswerRequest) GetQuestion() string {
	if x != nil {
		return x.Question
	}
	return ""
}

type AnswerResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Answer        string                 `protobuf:"bytes,1,opt,name=answer,proto3" json:"answer,omitempty"`
	ContextUsed   string                 `protobuf:"bytes,2,opt,name=context_used,json=contextUsed,proto3" json:"context_used,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AnswerResponse) Reset() {
	*x = AnswerResponse{}
	mi := &file_assistant_v1_assistant_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AnswerResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AnswerResponse) ProtoMessage() {}

func (x *AnswerResponse) ProtoReflect() protoreflect.Message {
	mi := &file_assistant_v1_assistant_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AnswerResponse.ProtoReflect.Descriptor instead.
func (*AnswerResponse) Descriptor() ([]byte, []int) {
	return file_assistant_v1_assistant_proto_rawDescGZIP(), []int{15}
}

func (x *AnswerResponse) GetAnswer() string {
	if x != nil {
		return x.Answer
	}
	return ""
}

func (x *AnswerResponse) GetContextUsed() string {
	if x != nil {
		return x.ContextUsed
	}
	return ""
}

type GetUsageStatsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetUsageStatsRequest) Reset() {
	*x = GetUsageStatsRequest{}
	mi := &file_assistant_v1_assistant_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetUsageStatsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetUsageStatsRequest) ProtoMessage() {}

func (x *GetUsageStatsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_assistant_v1_assistant_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetUsageStatsRequest.ProtoReflect.Descriptor instead.
func (*GetUsageStatsRequest) Descriptor() ([]byte, []int) {
	return file_assistant_v1_assistant_proto_rawDescGZIP(), []int{16}
}

type KeyUsage struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	KeyId         int32                  `protobuf:"varint,1,opt,name=key_id,json=keyId,proto3" json:"key_id,omitempty"`
	Requests      uint64                 `protobuf:"varint,2,opt,name=requests,proto3" json:"requests,omitempty"`
	Errors        uint64                 `protobuf:"varint,3,opt,name=errors,proto3" json:"errors,omitempty"`
	SuccessRate   float64                `protobuf:"fixed64,4,opt,name=success_rate,json=successRate,proto3" json:"success_rate,omitempty"` // 0..1
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *KeyUsage) Reset() {
	*x = KeyUsage{}
	mi := &file_assistant_v1_assistant_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *KeyUsage) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*KeyUsage) ProtoMessage() {}

func (x *KeyUsage) ProtoReflect() protoreflect.Message {
	mi := &file_assistant_v1_assistant_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use KeyUsage.ProtoReflect.Descriptor instead.
func (*KeyUsage) Descriptor() ([]byte, []int) {
	return file_assistant_v1_assistant_proto_rawDescGZIP(), []int{17}
}

func (x *KeyUsage) GetKeyId() int32 {
	if x != nil {
		return x.KeyId
	}
	return 0
}

func (x *KeyUsage) GetRequests() uint64 {
	if x != nil {
		return x.Requests
	}
	return 0
}

func (x *KeyUsage) GetErrors() uint64 {
	if x != nil {
		return x.Errors
	}
	return 0
}

func (x *KeyUsage) GetSuccessRate() float64 {
	if x != nil {
		return x.SuccessRate
	}
	return 0
}

type GetUsageStatsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Keys          []*KeyUsage            `protobuf:"bytes,1,rep,name=keys,proto3" json:"keys,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetUsageStatsResponse) Reset() {
	*x = GetUsageStatsResponse{}
	mi := &file_assistant_v1_assistant_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetUsageStatsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetUsageStatsResponse) ProtoMessage() {}

func (x *GetUsageStatsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_assistant_v1_assistant_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetUsageStatsResponse.ProtoReflect.Descriptor instead.
func (*GetUsageStatsResponse) Descriptor() ([]byte, []int) {
	return file_assistant_v1_assistant_proto_rawDescGZIP(), []int{18}
}

func (x *GetUsageStatsResponse) GetKeys() []*KeyUsage {
	if x != nil {
		return x.Keys
	}
	return nil
}

type ExportQuizRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportQuizRequest) Reset() {
	*x = ExportQuizRequest{}
	mi := &file_assistant_v1_assistant_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportQuizRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportQuizRequest) ProtoMessage() {}

func (x *ExportQuizRequest) ProtoReflect() protoreflect.Message {
	mi := &file_assistant_v1_assistant_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportQuizRequest.ProtoReflect.Descriptor instead.
func (*ExportQuizRequest) Descriptor() ([]byte, []int) {
	return file_assistant_v1_assistant_proto_rawDescGZIP(), []int{19}
}

func (x *ExportQuizRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

type ExportQuizResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportQuizResponse) Reset() {
	*x = ExportQuizResponse{}
	mi := &file_assistant_v1_assistant_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportQuizResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportQuizResponse) ProtoMessage() {}

func (x *ExportQuizResponse) ProtoReflect() protoreflect.Message {
	mi := &file_assistant_v1_assistant_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportQuizResponse.ProtoReflect.Descriptor instead.
func (*ExportQuizResponse) Descriptor() ([]byte, []int) {
	return file_assistant_v1_assistant_proto_rawDescGZIP(), []int{20}
}

func (x *ExportQuizResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

func (x *ExportQuizResponse) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

type ExportUsageStatsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportUsageStatsRequest) Reset() {
	*x = ExportUsageStatsRequest{}
	mi := &file_assistant_v1_assistant_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportUsageStatsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportUsageStatsRequest) ProtoMessage() {}

func (x *ExportUsageStatsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_assistant_v1_assistant_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportUsageStatsRequest.ProtoReflect.Descriptor instead.
func (*ExportUsageStatsRequest) Descriptor() ([]byte, []int) {
	return file_assistant_v1_assistant_proto_rawDescGZIP(), []int{21}
}

type ExportUsageStatsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportUsageStatsResponse) Reset() {
	*x = ExportUsageStatsResponse{}
	mi := &file_assistant_v1_assistant_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportUsageStatsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportUsageStatsResponse) ProtoMessage() {}

func (x *ExportUsageStatsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_assistant_v1_assistant_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportUsageStatsResponse.ProtoReflect.Descriptor instead.
func (*ExportUsageStatsResponse) Descriptor() ([]byte, []int) {
	return file_assistant_v1_assistant_proto_rawDescGZIP(), []int{22}
}

func (x *ExportUsageStatsResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

func (x *ExportUsageStatsResponse) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

var File_assistant_v1_assistant_proto protoreflect.FileDescriptor

const file_assistant_v1_assistant_proto_rawDesc = "" +
	"\n" +
	"\x1cassistant/v1/assistant.proto\x12\fassistant.v1\"\xc6\x01\n" +
	"\bDocument\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename\x12\x19\n" +
	"\bfile_ext\x18\x03 \x01(\tR\afileExt\x12\x1b\n" +
	"\tfile_size\x18\x04 \x01(\x03R\bfileSize\x12\x1d\n" +
	"\n" +
	"page_count\x18\x05 \x01(\x05R\tpageCount\x12\x16\n" +
	"\x06status\x18\x06 \x01(\tR\x06status\x12\x1f\n" +
	"\vuploaded_at\x18\a \x01(\tR\n" +
	"uploadedAt\"G\n" +
	"\x15UploadDocumentRequest\x12\x1a\n" +
	"\bfilename\x18\x01 \x01(\tR\bfilename\x12\x12\n" +
	"\x04data\x18\x02 \x01(\fR\x04data\"\x9a\x01\n" +
	"\x16UploadDocumentResponse\x122\n" +
	"\bdocument\x18\x01 \x01(\v2\x16.assistant.v1.DocumentR\bdocument\x12\"\n" +
	"\fdeduplicated\x18\x02 \x01(\bR\fdeduplicated\x12(\n" +
	"\x10content_hash_hex\x18\x03 \x01(\tR\x0econtentHashHex\"X\n" +
	"\x12GetDocumentRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\x12!\n" +
	"\finclude_text\x18\x02 \x01(\bR\vincludeText\"]\n" +
	"\x13GetDocumentResponse\x122\n" +
	"\bdocument\x18\x01 \x01(\v2\x16.assistant.v1.DocumentR\bdocument\x12\x12\n" +
	"\x04text\x18\x02 \x01(\tR\x04text\"\x16\n" +
	"\x14ListDocumentsRequest\"M\n" +
	"\x15ListDocumentsResponse\x124\n" +
	"\tdocuments\x18\x01 \x03(\v2\x16.assistant.v1.DocumentR\tdocuments\"8\n" +
	"\x15DeleteDocumentRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\"\x18\n" +
	"\x16DeleteDocumentResponse\"3\n" +
	"\x10SummarizeRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\"C\n" +
	"\x11SummarizeResponse\x12\x18\n" +
	"\asummary\x18\x01 \x01(\tR\asummary\x12\x14\n" +
	"\x05model\x18\x02 \x01(\tR\x05model\"\\\n" +
	"\fQuizQuestion\x12\x1a\n" +
	"\bquestion\x18\x01 \x01(\tR\bquestion\x12\x18\n" +
	"\aoptions\x18\x02 \x03(\tR\aoptions\x12\x16\n" +
	"\x06answer\x18\x03 \x01(\tR\x06answer\"[\n" +
	"\x13GenerateQuizRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\x12#\n" +
	"\rnum_questions\x18\x02 \x01(\x05R\fnumQuestions\"P\n" +
	"\x14GenerateQuizResponse\x128\n" +
	"\tquestions\x18\x01 \x03(\v2\x1a.assistant.v1.QuizQuestionR\tquestions\"L\n" +
	"\rAnswerRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\x12\x1a\n" +
	"\bquestion\x18\x02 \x01(\tR\bquestion\"K\n" +
	"\x0eAnswerResponse\x12\x16\n" +
	"\x06answer\x18\x01 \x01(\tR\x06answer\x12!\n" +
	"\fcontext_used\x18\x02 \x01(\tR\vcontextUsed\"\x16\n" +
	"\x14GetUsageStatsRequest\"x\n" +
	"\bKeyUsage\x12\x15\n" +
	"\x06key_id\x18\x01 \x01(\x05R\x05keyId\x12\x1a\n" +
	"\brequests\x18\x02 \x01(\x04R\brequests\x12\x16\n" +
	"\x06errors\x18\x03 \x01(\x04R\x06errors\x12!\n" +
	"\fsuccess_rate\x18\x04 \x01(\x01R\vsuccessRate\"C\n" +
	"\x15GetUsageStatsResponse\x12*\n" +
	"\x04keys\x18\x01 \x03(\v2\x16.assistant.v1.KeyUsageR\x04keys\"4\n" +
	"\x11ExportQuizRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\"D\n" +
	"\x12ExportQuizResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename\"\x19\n" +
	"\x17ExportUsageStatsRequest\"J\n" +
	"\x18ExportUsageStatsResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename2\xf2\x06\n" +
	"\x10AssistantService\x12[\n" +
	"\x0eUploadDocument\x12#.assistant.v1.UploadDocumentRequest\x1a$.assistant.v1.UploadDocumentResponse\x12R\n" +
	"\vGetDocument\x12 .assistant.v1.GetDocumentRequest\x1a!.assistant.v1.GetDocumentResponse\x12X\n" +
	"\rListDocuments\x12\".assistant.v1.ListDocumentsRequest\x1a#.assistant.v1.ListDocumentsResponse\x12[\n" +
	"\x0eDeleteDocument\x12#.assistant.v1.DeleteDocumentRequest\x1a$.assistant.v1.DeleteDocumentResponse\x12L\n" +
	"\tSummarize\x12\x1e.assistant.v1.SummarizeRequest\x1a\x1f.assistant.v1.SummarizeResponse\x12U\n" +
	"\fGenerateQuiz\x12!.assistant.v1.GenerateQuizRequest\x1a\".assistant.v1.GenerateQuizResponse\x12C\n" +
	"\x06Answer\x12\x1b.assistant.v1.AnswerRequest\x1a\x1c.assistant.v1.AnswerResponse\x12X\n" +
	"\rGetUsageStats\x12\".assistant.v1.GetUsageStatsRequest\x1a#.assistant.v1.GetUsageStatsResponse\x12O\n" +
	"\n" +
	"ExportQuiz\x12\x1f.assistant.v1.ExportQuizRequest\x1a .assistant.v1.ExportQuizResponse\x12a\n" +
	"\x10ExportUsageStats\x12%.assistant.v1.ExportUsageStatsRequest\x1a&.assistant.v1.ExportUsageStatsResponseBGZEgithub.com/o-adebayo/pdf-assistant/gen/proto/assistant/v1;assistantv1b\x06proto3"

var (
	file_assistant_v1_assistant_proto_rawDescOnce sync.Once
	file_assistant_v1_assistant_proto_rawDescData []byte
)

func file_assistant_v1_assistant_proto_rawDescGZIP() []byte {
	file_assistant_v1_assistant_proto_rawDescOnce.Do(func() {
		file_assistant_v1_assistant_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_assistant_v1_assistant_proto_rawDesc), len(file_assistant_v1_assistant_proto_rawDesc)))
	})
	return file_assistant_v1_assistant_proto_rawDescData
}

var file_assistant_v1_assistant_proto_msgTypes = make([]protoimpl.MessageInfo, 23)
var file_assistant_v1_assistant_proto_goTypes = []any{
	(*Document)(nil),                 // 0: assistant.v1.Document
	(*UploadDocumentRequest)(nil),    // 1: assistant.v1.UploadDocumentRequest
	(*UploadDocumentResponse)(nil),   // 2: assistant.v1.UploadDocumentResponse
	(*GetDocumentRequest)(nil),       // 3: assistant.v1.GetDocumentRequest
	(*GetDocumentResponse)(nil),      // 4: assistant.v1.GetDocumentResponse
	(*ListDocumentsRequest)(nil),     // 5: assistant.v1.ListDocumentsRequest
	(*ListDocumentsResponse)(nil),    // 6: assistant.v1.ListDocumentsResponse
	(*DeleteDocumentRequest)(nil),    // 7: assistant.v1.DeleteDocumentRequest
	(*DeleteDocumentResponse)(nil),   // 8: assistant.v1.DeleteDocumentResponse
	(*SummarizeRequest)(nil),         // 9: assistant.v1.SummarizeRequest
	(*SummarizeResponse)(nil),        // 10: assistant.v1.SummarizeResponse
	(*QuizQuestion)(nil),             // 11: assistant.v1.QuizQuestion
	(*GenerateQuizRequest)(nil),      // 12: assistant.v1.GenerateQuizRequest
	(*GenerateQuizResponse)(nil),     // 13: assistant.v1.GenerateQuizResponse
	(*AnswerRequest)(nil),            // 14: assistant.v1.AnswerRequest
	(*AnswerResponse)(nil),           // 15: assistant.v1.AnswerResponse
	(*GetUsageStatsRequest)(nil),     // 16: assistant.v1.GetUsageStatsRequest
	(*KeyUsage)(nil),                 // 17: assistant.v1.KeyUsage
	(*GetUsageStatsResponse)(nil),    // 18: assistant.v1.GetUsageStatsResponse
	(*ExportQuizRequest)(nil),        // 19: assistant.v1.ExportQuizRequest
	(*ExportQuizResponse)(nil),       // 20: assistant.v1.ExportQuizResponse
	(*ExportUsageStatsRequest)(nil),  // 21: assistant.v1.ExportUsageStatsRequest
	(*ExportUsageStatsResponse)(nil), // 22: assistant.v1.ExportUsageStatsResponse
}
var file_assistant_v1_assistant_proto_depIdxs = []int32{
	0,  // 0: assistant.v1.UploadDocumentResponse.document:type_name -> assistant.v1.Document
	0,  // 1: assistant.v1.GetDocumentResponse.document:type_name -> assistant.v1.Document
	0,  // 2: assistant.v1.ListDocumentsResponse.documents:type_name -> assistant.v1.Document
	11, // 3: assistant.v1.GenerateQuizResponse.questions:type_name -> assistant.v1.QuizQuestion
	17, // 4: assistant.v1.GetUsageStatsResponse.keys:type_name -> assistant.v1.KeyUsage
	1,  // 5: assistant.v1.AssistantService.UploadDocument:input_type -> assistant.v1.UploadDocumentRequest
	3,  // 6: assistant.v1.AssistantService.GetDocument:input_type -> assistant.v1.GetDocumentRequest
	5,  // 7: assistant.v1.AssistantService.ListDocuments:input_type -> assistant.v1.ListDocumentsRequest
	7,  // 8: assistant.v1.AssistantService.DeleteDocument:input_type -> assistant.v1.DeleteDocumentRequest
	9,  // 9: assistant.v1.AssistantService.Summarize:input_type -> assistant.v1.SummarizeRequest
	12, // 10: assistant.v1.AssistantService.GenerateQuiz:input_type -> assistant.v1.GenerateQuizRequest
	14, // 11: assistant.v1.AssistantService.Answer:input_type -> assistant.v1.AnswerRequest
	16, // 12: assistant.v1.AssistantService.GetUsageStats:input_type -> assistant.v1.GetUsageStatsRequest
	19, // 13: assistant.v1.AssistantService.ExportQuiz:input_type -> assistant.v1.ExportQuizRequest
	21, // 14: assistant.v1.AssistantService.ExportUsageStats:input_type -> assistant.v1.ExportUsageStatsRequest
	2,  // 15: assistant.v1.AssistantService.UploadDocument:output_type -> assistant.v1.UploadDocumentResponse
	4,  // 16: assistant.v1.AssistantService.GetDocument:output_type -> assistant.v1.GetDocumentResponse
	6,  // 17: assistant.v1.AssistantService.ListDocuments:output_type -> assistant.v1.ListDocumentsResponse
	8,  // 18: assistant.v1.AssistantService.DeleteDocument:output_type -> assistant.v1.DeleteDocumentResponse
	10, // 19: assistant.v1.AssistantService.Summarize:output_type -> assistant.v1.SummarizeResponse
	13, // 20: assistant.v1.AssistantService.GenerateQuiz:output_type -> assistant.v1.GenerateQuizResponse
	15, // 21: assistant.v1.AssistantService.Answer:output_type -> assistant.v1.AnswerResponse
	18, // 22: assistant.v1.AssistantService.GetUsageStats:output_type -> assistant.v1.GetUsageStatsResponse
	20, // 23: assistant.v1.AssistantService.ExportQuiz:output_type -> assistant.v1.ExportQuizResponse
	22, // 24: assistant.v1.AssistantService.ExportUsageStats:output_type -> assistant.v1.ExportUsageStatsResponse
	15, // [15:25] is the sub-list for method output_type
	5,  // [5:15] is the sub-list for method input_type
	5,  // [5:5] is the sub-list for extension type_name
	5,  // [5:5] is the sub-list for extension extendee
	0,  // [0:5] is the sub-list for field type_name
}

func init() { file_assistant_v1_assistant_proto_init() }
func file_assistant_v1_assistant_proto_init() {
	if File_assistant_v1_assistant_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_assistant_v1_assistant_proto_rawDesc), len(file_assistant_v1_assistant_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   23,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_assistant_v1_assistant_proto_goTypes,
		DependencyIndexes: file_assistant_v1_assistant_proto_depIdxs,
		MessageInfos:      file_assistant_v1_assistant_proto_msgTypes,
	}.Build()
	File_assistant_v1_assistant_proto = out.File
	file_assistant_v1_assistant_proto_goTypes = nil
	file_assistant_v1_assistant_proto_depIdxs = nil
}
