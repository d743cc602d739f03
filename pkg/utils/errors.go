/*
       Copyright (c) Microsoft Corporation.
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package utils

import (
	"errors"
	"fmt"
	"net/http"

	sdkerrors "github.com/Azure/azure-sdk-for-go-extensions/pkg/errors"
)

// OperationError is returned by every gateway call that failed on the provider side.
// Context describes what the adapter was doing, Message carries the provider's description.
type OperationError struct {
	Context    string
	Message    string
	Code       string
	StatusCode int
	Err        error
}

func (e *OperationError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("exception in %s: %s", e.Context, e.Message)
	}
	return fmt.Sprintf("exception in %s: %s (type: %s)", e.Context, e.Message, e.Code)
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

// NewOperationError wraps a provider error with the caller supplied context. A nil err yields nil.
func NewOperationError(err error, context string) error {
	if err == nil {
		return nil
	}
	opErr := &OperationError{
		Context: context,
		Message: err.Error(),
		Err:     err,
	}
	if azErr := sdkerrors.IsResponseError(err); azErr != nil {
		opErr.Code = azErr.ErrorCode
		opErr.StatusCode = azErr.StatusCode
	}
	return opErr
}

// IsOperationError reports whether err is, or wraps, an *OperationError.
func IsOperationError(err error) bool {
	var opErr *OperationError
	return errors.As(err, &opErr)
}

// IsAzureNotFoundError checks if an error is an Azure "NotFound" error
func IsAzureNotFoundError(err error) bool {
	if err == nil {
		return false
	}

	azErr := sdkerrors.IsResponseError(err)
	if azErr == nil {
		return false
	}
	return azErr.ErrorCode == "NotFound" || sdkerrors.IsNotFoundErr(err) || azErr.StatusCode == http.StatusNotFound
}

// ShouldIgnoreNotFoundError returns nil if the error is a "NotFound" error, otherwise returns the original error
func ShouldIgnoreNotFoundError(err error) error {
	if IsAzureNotFoundError(err) {
		return nil
	}
	return err
}
