package domain

import (
	"context"
	"errors"
	"fmt"
	"log"

	apperrors "github.com/louisbranch/roman/internal/platform/errors"
	"github.com/louisbranch/roman/internal/platform/id"
	"github.com/louisbranch/roman/internal/platform/requestctx"
	"github.com/louisbranch/roman/internal/services/converter/api/grpc/converterv1"
	"github.com/louisbranch/roman/internal/services/converter/numeral"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const (
	// RomanToNumberToolName decodes a numeral.
	RomanToNumberToolName = "roman_to_number"
	// NumberToRomanToolName encodes an integer.
	NumberToRomanToolName = "number_to_roman"
)

// RomanToNumberInput is the roman_to_number argument shape.
type RomanToNumberInput struct {
	Roman string `json:"roman" jsonschema:"Roman numeral such as XIV, or nulla for zero"`
}

// RomanToNumberResult is the roman_to_number result shape.
type RomanToNumberResult struct {
	Number int `json:"number" jsonschema:"decoded value in 0-3999"`
}

// NumberToRomanInput is the number_to_roman argument shape.
type NumberToRomanInput struct {
	Number int `json:"number" jsonschema:"integer in 0-3999"`
}

// NumberToRomanResult is the number_to_roman result shape.
type NumberToRomanResult struct {
	Roman string `json:"roman" jsonschema:"canonical Roman numeral"`
}

// RomanToNumberTool describes roman_to_number.
func RomanToNumberTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        RomanToNumberToolName,
		Description: "Converts a Roman numeral (0-3999, nulla for zero) to an integer",
	}
}

// NumberToRomanTool describes number_to_roman.
func NumberToRomanTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        NumberToRomanToolName,
		Description: "Converts an integer in 0-3999 to its canonical Roman numeral",
	}
}

// RomanToNumberHandler decodes input.Roman through client.
func RomanToNumberHandler(client converterv1.ConverterServiceClient) mcp.ToolHandlerFor[RomanToNumberInput, RomanToNumberResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input RomanToNumberInput) (*mcp.CallToolResult, RomanToNumberResult, error) {
		callCtx, cancel, err := newCallContext(ctx)
		if err != nil {
			return nil, RomanToNumberResult{}, err
		}
		defer cancel()

		response, err := client.ToNumber(callCtx, wrapperspb.String(input.Roman))
		if err != nil {
			return nil, RomanToNumberResult{}, toolError(callCtx, RomanToNumberToolName, err)
		}
		return nil, RomanToNumberResult{Number: int(response.GetValue())}, nil
	}
}

// NumberToRomanHandler encodes input.Number through client.
func NumberToRomanHandler(client converterv1.ConverterServiceClient) mcp.ToolHandlerFor[NumberToRomanInput, NumberToRomanResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input NumberToRomanInput) (*mcp.CallToolResult, NumberToRomanResult, error) {
		// Values outside the numeral range cannot fit the wire type.
		if input.Number < numeral.MinValue || input.Number > numeral.MaxValue {
			_, err := numeral.Encode(input.Number)
			return nil, NumberToRomanResult{}, toolError(ctx, NumberToRomanToolName, err)
		}
		callCtx, cancel, err := newCallContext(ctx)
		if err != nil {
			return nil, NumberToRomanResult{}, err
		}
		defer cancel()

		response, err := client.ToRoman(callCtx, wrapperspb.Int32(int32(input.Number)))
		if err != nil {
			return nil, NumberToRomanResult{}, toolError(callCtx, NumberToRomanToolName, err)
		}
		return nil, NumberToRomanResult{Roman: response.GetValue()}, nil
	}
}

// newCallContext bounds a converter call and tags it with a fresh request id.
func newCallContext(ctx context.Context) (context.Context, context.CancelFunc, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	requestID, err := id.NewID()
	if err != nil {
		return nil, nil, fmt.Errorf("generate request id: %w", err)
	}
	callCtx, cancel := context.WithTimeout(requestctx.WithRequestID(ctx, "mcp-"+requestID), grpcCallTimeout)
	return callCtx, cancel, nil
}

// toolError turns a converter failure into the text the MCP client sees.
// Typed failures use the converter's localized message.
func toolError(ctx context.Context, tool string, err error) error {
	if remote, message, ok := apperrors.FromGRPCStatus(err); ok {
		if message == "" {
			message = remote.LocalizedMessage("")
		}
		return errors.New(message)
	}
	if domainErr, ok := apperrors.As(err); ok {
		return errors.New(domainErr.LocalizedMessage(""))
	}
	log.Printf("mcp tool failed: tool=%s request_id=%s err=%v", tool, requestctx.RequestIDFromContext(ctx), err)
	return fmt.Errorf("%s failed: %w", tool, err)
}
