// Affectus - Emoji Suggestion Ranking, Personalization, and Evaluation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/affectus

// Package validation provides struct validation using go-playground/validator v10.
//
// This package wraps the go-playground/validator library to provide a thread-safe
// singleton validator instance with custom validators and user-friendly error
// messages. It integrates with the application's API error format for consistent
// error responses.
//
// # Overview
//
// The package provides:
//   - Thread-safe singleton validator (initialized once, cached struct info)
//   - Custom "emotion" validator bound to the supported emotion label set
//   - Comprehensive error translation to human-readable messages
//   - APIError conversion matching the application's error format
//   - Future v11 compatibility with WithRequiredStructEnabled
//
// # Quick Start
//
//	type FeedbackRequest struct {
//	    UserID  string `validate:"required,max=128"`
//	    Emoji   string `validate:"required,max=16"`
//	    Emotion string `validate:"required,emotion"`
//	}
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//	    var req FeedbackRequest
//	    if err := json.Decode(r.Body, &req); err != nil {
//	        // handle decode error
//	    }
//
//	    if verr := validation.ValidateStruct(&req); verr != nil {
//	        apiErr := verr.ToAPIError()
//	        respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
//	        return
//	    }
//
//	    // proceed with valid request
//	}
//
// # Common Validation Tags
//
// String validations:
//   - required: Field must not be empty
//   - min=n: Minimum length n characters
//   - max=n: Maximum length n characters
//
// Numeric validations:
//   - gte=n, lte=n, gt=n, lt=n: Range comparisons
//   - min=n, max=n: Inclusive bounds
//
// Collection validations:
//   - min=n, max=n: Item count bounds on slices
//   - dive: Apply the following tags to each element
//
// Enum validations:
//   - oneof=a b c: Must be one of the specified values
//
// Domain validations:
//   - emotion: Must be a label from the supported emotion set
//     (joy, sadness, anger, fear, surprise, disgust, trust, anticipation)
//
// # API Error Integration
//
// The ToAPIError method produces errors matching the application format:
//
//	// Single field error
//	{
//	    "code": "VALIDATION_ERROR",
//	    "message": "Emotion must be a supported emotion label",
//	    "details": {"field": "Emotion", "tag": "emotion", "value": "happiness"}
//	}
//
//	// Multiple field errors
//	{
//	    "code": "VALIDATION_ERROR",
//	    "message": "Text: is required; TopK: must be at most 10",
//	    "details": {
//	        "fields": [
//	            {"field": "Text", "tag": "required", "message": "..."},
//	            {"field": "TopK", "tag": "max", "message": "..."}
//	        ]
//	    }
//	}
//
// # Error Message Translation
//
// Human-readable messages are generated for common validation tags:
//
//	required   -> "Text is required"
//	min=1      -> "Text must be at least 1 characters"
//	max=500    -> "Text must be at most 500 characters"
//	max=100    -> "Texts must contain at most 100 items" (slices)
//	oneof=a b  -> "Method must be one of: a b"
//	emotion    -> "Emotion must be a supported emotion label"
//
// # Struct Tag Examples
//
// Batch request validation:
//
//	type BatchSuggestRequest struct {
//	    Texts  []string `validate:"required,min=1,max=100,dive,min=1,max=500"`
//	    TopK   int      `validate:"omitempty,min=1,max=10"`
//	    Method string   `validate:"omitempty,oneof=voting weighted"`
//	}
//
// # Thread Safety
//
// The singleton validator is initialized once and safe for concurrent use:
//
//	validate := validation.GetValidator()  // Thread-safe
//	err := validation.ValidateStruct(&req) // Thread-safe
//
// # See Also
//
//   - internal/api: Request handlers using validation
//   - internal/models: Request structs carrying the validate tags
//   - internal/emotion: The label set behind the "emotion" tag
//   - github.com/go-playground/validator/v10: Underlying library
package validation
