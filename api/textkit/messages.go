package textkit

import (
	"fmt"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/msto63/textkit/foundation/core/errors"
)

// Field names used on the wire
const (
	FieldText              = "text"
	FieldURL               = "url"
	FieldURLs              = "urls"
	FieldDelimiters        = "delimiters"
	FieldTrimTokens        = "trim_tokens"
	FieldIgnoreEmptyTokens = "ignore_empty_tokens"
	FieldValues            = "values"
	FieldValue             = "value"
	FieldCaseRule          = "case_rule"
)

// TextRequest carries a nullable text. Used by IsEmpty, UpperFirst and
// LowerFirst; CaseRule names the case rule, nil for the server default.
type TextRequest struct {
	Text     *string
	CaseRule *string
}

// URLPatternRequest carries a nullable URL path
type URLPatternRequest struct {
	URL *string
}

// URLPatternsRequest carries a URL list; Present is false when the list is
// absent.
type URLPatternsRequest struct {
	URLs    []string
	Present bool
}

// TokenizeRequest carries the tokenizer input. Nil fields fall back to the
// server configuration.
type TokenizeRequest struct {
	Text              *string
	Delimiters        *string
	TrimTokens        *bool
	IgnoreEmptyTokens *bool
}

// ListRequest carries a string list for ToStringArray
type ListRequest struct {
	Values  []string
	Present bool
}

// TextResponse carries a string result
type TextResponse struct {
	Text string
}

// BoolResponse carries a boolean result
type BoolResponse struct {
	Value bool
}

// ListResponse carries a string list result; Present is false for an
// absent list.
type ListResponse struct {
	Values  []string
	Present bool
}

// NewListRequest builds a ListRequest from values, absent when values is nil
func NewListRequest(values []string) *ListRequest {
	return &ListRequest{Values: values, Present: values != nil}
}

// NewURLPatternsRequest builds a URLPatternsRequest, absent when urls is nil
func NewURLPatternsRequest(urls []string) *URLPatternsRequest {
	return &URLPatternsRequest{URLs: urls, Present: urls != nil}
}

// NewListResponse builds a ListResponse, absent when values is nil
func NewListResponse(values []string) *ListResponse {
	return &ListResponse{Values: values, Present: values != nil}
}

// List returns the values, nil when absent and non-nil otherwise
func (r *ListResponse) List() []string {
	return presentList(r.Values, r.Present)
}

// List returns the values, nil when absent and non-nil otherwise
func (r *ListRequest) List() []string {
	return presentList(r.Values, r.Present)
}

// List returns the URLs, nil when absent and non-nil otherwise
func (r *URLPatternsRequest) List() []string {
	return presentList(r.URLs, r.Present)
}

func presentList(values []string, present bool) []string {
	if !present {
		return nil
	}
	if values == nil {
		return []string{}
	}
	return values
}

// ToStruct encodes the request
func (r *TextRequest) ToStruct() *structpb.Struct {
	return newStruct(map[string]*structpb.Value{
		FieldText:     stringPtrValue(r.Text),
		FieldCaseRule: stringPtrValue(r.CaseRule),
	})
}

// TextRequestFromStruct decodes a TextRequest
func TextRequestFromStruct(s *structpb.Struct) (*TextRequest, error) {
	const op = "TextRequestFromStruct"

	text, err := optionalString(s, FieldText, op)
	if err != nil {
		return nil, err
	}
	rule, err := optionalString(s, FieldCaseRule, op)
	if err != nil {
		return nil, err
	}
	return &TextRequest{Text: text, CaseRule: rule}, nil
}

// ToStruct encodes the request
func (r *URLPatternRequest) ToStruct() *structpb.Struct {
	return newStruct(map[string]*structpb.Value{
		FieldURL: stringPtrValue(r.URL),
	})
}

// URLPatternRequestFromStruct decodes a URLPatternRequest
func URLPatternRequestFromStruct(s *structpb.Struct) (*URLPatternRequest, error) {
	url, err := optionalString(s, FieldURL, "URLPatternRequestFromStruct")
	if err != nil {
		return nil, err
	}
	return &URLPatternRequest{URL: url}, nil
}

// ToStruct encodes the request
func (r *URLPatternsRequest) ToStruct() *structpb.Struct {
	return newStruct(map[string]*structpb.Value{
		FieldURLs: listValue(r.URLs, r.Present),
	})
}

// URLPatternsRequestFromStruct decodes a URLPatternsRequest
func URLPatternsRequestFromStruct(s *structpb.Struct) (*URLPatternsRequest, error) {
	urls, present, err := optionalList(s, FieldURLs, "URLPatternsRequestFromStruct")
	if err != nil {
		return nil, err
	}
	return &URLPatternsRequest{URLs: urls, Present: present}, nil
}

// ToStruct encodes the request
func (r *TokenizeRequest) ToStruct() *structpb.Struct {
	return newStruct(map[string]*structpb.Value{
		FieldText:              stringPtrValue(r.Text),
		FieldDelimiters:        stringPtrValue(r.Delimiters),
		FieldTrimTokens:        boolPtrValue(r.TrimTokens),
		FieldIgnoreEmptyTokens: boolPtrValue(r.IgnoreEmptyTokens),
	})
}

// TokenizeRequestFromStruct decodes a TokenizeRequest
func TokenizeRequestFromStruct(s *structpb.Struct) (*TokenizeRequest, error) {
	const op = "TokenizeRequestFromStruct"

	text, err := optionalString(s, FieldText, op)
	if err != nil {
		return nil, err
	}
	delimiters, err := optionalString(s, FieldDelimiters, op)
	if err != nil {
		return nil, err
	}
	trim, err := optionalBool(s, FieldTrimTokens, op)
	if err != nil {
		return nil, err
	}
	ignore, err := optionalBool(s, FieldIgnoreEmptyTokens, op)
	if err != nil {
		return nil, err
	}

	return &TokenizeRequest{
		Text:              text,
		Delimiters:        delimiters,
		TrimTokens:        trim,
		IgnoreEmptyTokens: ignore,
	}, nil
}

// ToStruct encodes the request
func (r *ListRequest) ToStruct() *structpb.Struct {
	return newStruct(map[string]*structpb.Value{
		FieldValues: listValue(r.Values, r.Present),
	})
}

// ListRequestFromStruct decodes a ListRequest
func ListRequestFromStruct(s *structpb.Struct) (*ListRequest, error) {
	values, present, err := optionalList(s, FieldValues, "ListRequestFromStruct")
	if err != nil {
		return nil, err
	}
	return &ListRequest{Values: values, Present: present}, nil
}

// ToStruct encodes the response
func (r *TextResponse) ToStruct() *structpb.Struct {
	return newStruct(map[string]*structpb.Value{
		FieldText: structpb.NewStringValue(r.Text),
	})
}

// TextResponseFromStruct decodes a TextResponse; a missing text is ""
func TextResponseFromStruct(s *structpb.Struct) (*TextResponse, error) {
	text, err := optionalString(s, FieldText, "TextResponseFromStruct")
	if err != nil {
		return nil, err
	}
	resp := &TextResponse{}
	if text != nil {
		resp.Text = *text
	}
	return resp, nil
}

// ToStruct encodes the response
func (r *BoolResponse) ToStruct() *structpb.Struct {
	return newStruct(map[string]*structpb.Value{
		FieldValue: structpb.NewBoolValue(r.Value),
	})
}

// BoolResponseFromStruct decodes a BoolResponse; a missing value is false
func BoolResponseFromStruct(s *structpb.Struct) (*BoolResponse, error) {
	value, err := optionalBool(s, FieldValue, "BoolResponseFromStruct")
	if err != nil {
		return nil, err
	}
	resp := &BoolResponse{}
	if value != nil {
		resp.Value = *value
	}
	return resp, nil
}

// ToStruct encodes the response
func (r *ListResponse) ToStruct() *structpb.Struct {
	return newStruct(map[string]*structpb.Value{
		FieldValues: listValue(r.Values, r.Present),
	})
}

// ListResponseFromStruct decodes a ListResponse
func ListResponseFromStruct(s *structpb.Struct) (*ListResponse, error) {
	values, present, err := optionalList(s, FieldValues, "ListResponseFromStruct")
	if err != nil {
		return nil, err
	}
	return &ListResponse{Values: values, Present: present}, nil
}

func newStruct(fields map[string]*structpb.Value) *structpb.Struct {
	return &structpb.Struct{Fields: fields}
}

func stringPtrValue(s *string) *structpb.Value {
	if s == nil {
		return structpb.NewNullValue()
	}
	return structpb.NewStringValue(*s)
}

func boolPtrValue(b *bool) *structpb.Value {
	if b == nil {
		return structpb.NewNullValue()
	}
	return structpb.NewBoolValue(*b)
}

func listValue(values []string, present bool) *structpb.Value {
	if !present {
		return structpb.NewNullValue()
	}
	items := make([]*structpb.Value, len(values))
	for i, v := range values {
		items[i] = structpb.NewStringValue(v)
	}
	return structpb.NewListValue(&structpb.ListValue{Values: items})
}

// lookup returns the value of key; ok is false when the field is missing
// or null.
func lookup(s *structpb.Struct, key string) (*structpb.Value, bool) {
	v, ok := s.GetFields()[key]
	if !ok || v == nil {
		return nil, false
	}
	if _, null := v.GetKind().(*structpb.Value_NullValue); null {
		return nil, false
	}
	return v, true
}

func optionalString(s *structpb.Struct, key, op string) (*string, error) {
	v, ok := lookup(s, key)
	if !ok {
		return nil, nil
	}
	sv, isString := v.GetKind().(*structpb.Value_StringValue)
	if !isString {
		return nil, wrongType(op, key, v, "string")
	}
	text := sv.StringValue
	return &text, nil
}

func optionalBool(s *structpb.Struct, key, op string) (*bool, error) {
	v, ok := lookup(s, key)
	if !ok {
		return nil, nil
	}
	bv, isBool := v.GetKind().(*structpb.Value_BoolValue)
	if !isBool {
		return nil, wrongType(op, key, v, "bool")
	}
	b := bv.BoolValue
	return &b, nil
}

func optionalList(s *structpb.Struct, key, op string) ([]string, bool, error) {
	v, ok := lookup(s, key)
	if !ok {
		return nil, false, nil
	}
	lv, isList := v.GetKind().(*structpb.Value_ListValue)
	if !isList {
		return nil, false, wrongType(op, key, v, "list of strings")
	}

	items := lv.ListValue.GetValues()
	values := make([]string, len(items))
	for i, item := range items {
		sv, isString := item.GetKind().(*structpb.Value_StringValue)
		if !isString {
			return nil, false, wrongType(op, fmt.Sprintf("%s[%d]", key, i), item, "string")
		}
		values[i] = sv.StringValue
	}
	return values, true, nil
}

func wrongType(op, key string, v *structpb.Value, expected string) error {
	return errors.InvalidArgument(errors.ModuleAPI, op, kindName(v), fmt.Sprintf("%s for field %q", expected, key)).
		WithDetail("field", key)
}

func kindName(v *structpb.Value) string {
	switch v.GetKind().(type) {
	case *structpb.Value_NullValue:
		return "null"
	case *structpb.Value_NumberValue:
		return "number"
	case *structpb.Value_StringValue:
		return "string"
	case *structpb.Value_BoolValue:
		return "bool"
	case *structpb.Value_StructValue:
		return "struct"
	case *structpb.Value_ListValue:
		return "list"
	default:
		return "unset"
	}
}
