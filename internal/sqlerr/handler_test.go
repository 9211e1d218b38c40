package sqlerr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/deppfellow/lightbnb/internal/errs"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func asHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()
	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %T", err)
	return httpErr
}

func TestHandleError_UniqueViolation(t *testing.T) {
	err := fmt.Errorf("insert user: %w", &pgconn.PgError{
		Code:           "23505",
		Severity:       "ERROR",
		Message:        "duplicate key value violates unique constraint",
		TableName:      "users",
		ConstraintName: "users_email_key",
	})

	httpErr := asHTTPError(t, HandleError(err))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "USER_ALREADY_EXISTS", httpErr.Code)
	assert.Equal(t, "A User with this Email already exists", httpErr.Message)
	assert.True(t, httpErr.Override)
}

func TestHandleError_ForeignKeyViolation(t *testing.T) {
	err := &pgconn.PgError{
		Code:       "23503",
		Severity:   "ERROR",
		TableName:  "properties",
		ColumnName: "owner_id",
	}

	httpErr := asHTTPError(t, HandleError(err))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "PROPERTY_NOT_FOUND", httpErr.Code)
	assert.Equal(t, "The referenced Owner does not exist", httpErr.Message)
}

func TestHandleError_NotNullViolation(t *testing.T) {
	err := &pgconn.PgError{
		Code:       "23502",
		TableName:  "properties",
		ColumnName: "post_code",
	}

	httpErr := asHTTPError(t, HandleError(err))
	assert.Equal(t, "PROPERTY_REQUIRED", httpErr.Code)
	assert.Equal(t, "The Post Code is required", httpErr.Message)
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, "post_code", httpErr.Errors[0].Field)
}

func TestHandleError_OtherPgError(t *testing.T) {
	httpErr := asHTTPError(t, HandleError(&pgconn.PgError{Code: "42P01"}))
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
}

func TestHandleError_NotFound(t *testing.T) {
	httpErr := asHTTPError(t, HandleError(NotFound("users")))
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, "User not found", httpErr.Message)

	httpErr = asHTTPError(t, HandleError(fmt.Errorf("get property: %w", NotFound("properties"))))
	assert.Equal(t, "Property not found", httpErr.Message)
}

func TestHandleError_PassesHTTPErrorThrough(t *testing.T) {
	original := errs.NewNotFoundError("Route not found", false, nil)
	assert.Same(t, original, HandleError(original))
}

func TestHandleError_Unknown(t *testing.T) {
	httpErr := asHTTPError(t, HandleError(errors.New("connection reset")))
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(NotFound("users")))
	assert.True(t, IsNotFound(fmt.Errorf("wrapped: %w", NotFound("users"))))
	assert.False(t, IsNotFound(errors.New("connection refused")))
	assert.False(t, IsNotFound(nil))
}

func TestMapCode(t *testing.T) {
	assert.Equal(t, UniqueViolation, MapCode("23505"))
	assert.Equal(t, ForeignKeyViolation, MapCode("23503"))
	assert.Equal(t, NotNullViolation, MapCode("23502"))
	assert.Equal(t, CheckViolation, MapCode("23514"))
	assert.Equal(t, QueryCanceled, MapCode("57014"))
	assert.Equal(t, Other, MapCode("XX000"))
}

func TestErrCode(t *testing.T) {
	converted := ConvertPgError(&pgconn.PgError{Code: "23505", Severity: "ERROR"})
	assert.Equal(t, UniqueViolation, ErrCode(fmt.Errorf("wrap: %w", converted)))
	assert.Equal(t, Other, ErrCode(errors.New("plain")))

	var pgErr *pgconn.PgError
	assert.True(t, errors.As(converted, &pgErr))
}

func TestExtractColumnForUniqueViolation(t *testing.T) {
	assert.Equal(t, "email", extractColumnForUniqueViolation("users_email_key"))
	assert.Equal(t, "email", extractColumnForUniqueViolation("unique_users_email"))
	assert.Equal(t, "", extractColumnForUniqueViolation("pk_users"))
}

func TestSingular(t *testing.T) {
	assert.Equal(t, "property", singular("properties"))
	assert.Equal(t, "PROPERTY", singular("PROPERTIES"))
	assert.Equal(t, "user", singular("users"))
	assert.Equal(t, "property_review", singular("property_reviews"))
}
