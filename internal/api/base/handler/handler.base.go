// Package basehdl provides the request/response plumbing shared by every
// domain handler: safe execution with panic recovery, body parsing with
// validation, id param parsing and the uniform response envelope.
package basehdl

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shaesansv/pet-new/internal/common"
	"github.com/shaesansv/pet-new/internal/global"
	"github.com/shaesansv/pet-new/internal/logger"
)

// BaseHandler is embedded by every domain handler.
type BaseHandler struct{}

// JSONResponse returns a JSON response with Content-Type
// application/json; charset=utf-8 so UTF-8 payloads render correctly.
func JSONResponse(c fiber.Ctx, statusCode int, data interface{}) error {
	c.Set("Content-Type", "application/json; charset=utf-8")
	return c.Status(statusCode).JSON(data)
}

// SafeHandler wraps a handler body with recover so the server always
// returns a response to the client, even when the handler panics.
func (h *BaseHandler) SafeHandler(c fiber.Ctx, handler func() error) error {
	defer func() {
		if r := recover(); r != nil {
			logger.GetErrorLogger().WithField("stack", string(debug.Stack())).
				Errorf("panic in handler: %v", r)

			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeInternalServer,
				fmt.Sprintf("Unexpected system error: %v", r),
				common.StatusInternalServerError,
				nil,
			))
		}
	}()
	return handler()
}

// HandleResponse normalizes the response returned to the client so the
// envelope is identical across the whole application.
func (h *BaseHandler) HandleResponse(c fiber.Ctx, data interface{}, err error) {
	if err != nil {
		var customErr *common.Error
		if errors.As(err, &customErr) {
			JSONResponse(c, customErr.StatusCode, fiber.Map{
				"code":    customErr.Code.Code,
				"message": customErr.Message,
				"details": customErr.Details,
				"status":  "error",
			})
			return
		}
		JSONResponse(c, common.StatusInternalServerError, fiber.Map{
			"code":    common.ErrCodeInternalServer.Code,
			"message": err.Error(),
			"status":  "error",
		})
		return
	}

	JSONResponse(c, common.StatusOK, fiber.Map{
		"code":    common.StatusOK,
		"message": common.MsgSuccess,
		"data":    data,
		"status":  "success",
	})
}

// ParseRequestBody parses the request body into input.
// json.Decoder with UseNumber keeps numeric values exact.
func (h *BaseHandler) ParseRequestBody(c fiber.Ctx, input interface{}) error {
	decoder := json.NewDecoder(bytes.NewReader(c.Body()))
	decoder.UseNumber()
	if err := decoder.Decode(input); err != nil {
		return common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("Request body is not valid JSON or does not match the expected structure. Details: %v", err),
			common.StatusBadRequest,
			err,
		)
	}
	return nil
}

// ValidateInput validates input against its struct tags (validate, oneof,
// custom validators).
func (h *BaseHandler) ValidateInput(input interface{}) error {
	if err := global.Validate.Struct(input); err != nil {
		return common.NewError(
			common.ErrCodeValidationInput,
			fmt.Sprintf("%s: %v", common.MsgValidationError, err),
			common.StatusBadRequest,
			err,
		)
	}
	return nil
}

// ParseIDParam reads the :id URI param and converts it to an ObjectID.
func (h *BaseHandler) ParseIDParam(c fiber.Ctx) (primitive.ObjectID, error) {
	id := c.Params("id")
	if id == "" {
		return primitive.NilObjectID, common.NewError(
			common.ErrCodeValidationFormat,
			"ID must not be empty in URL params",
			common.StatusBadRequest,
			nil,
		)
	}
	if !primitive.IsValidObjectID(id) {
		return primitive.NilObjectID, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("ID '%s' is not a valid ObjectID (24 character hex string)", id),
			common.StatusBadRequest,
			nil,
		)
	}
	objectID, _ := primitive.ObjectIDFromHex(id)
	return objectID, nil
}
