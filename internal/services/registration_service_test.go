package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveSort(t *testing.T) {
	allowed := []string{
		"id", "serial_number", "first_name", "middle_name", "last_name",
		"gender", "marital_status", "birthday", "city", "state", "zip_code",
		"phone", "native_place", "verified", "created_at",
	}

	for _, col := range allowed {
		column, order := resolveSort(col, "asc")
		assert.Equal(t, col, column)
		assert.Equal(t, "asc", order)
	}
}

func TestResolveSortRejectsUnknownColumns(t *testing.T) {
	cases := []string{
		"password_hash",
		"id; DROP TABLE registrations--",
		"ID",
		"",
		"name",
	}

	for _, input := range cases {
		column, _ := resolveSort(input, "desc")
		assert.Equal(t, "id", column, "input %q must fall back to id", input)
	}
}

func TestResolveSortOrderDefaultsToDesc(t *testing.T) {
	for _, input := range []string{"desc", "DESC", "ascending", "", "1; --"} {
		_, order := resolveSort("id", input)
		assert.Equal(t, "desc", order, "input %q", input)
	}

	_, order := resolveSort("id", "asc")
	assert.Equal(t, "asc", order)
}

func TestClampLimit(t *testing.T) {
	assert.Equal(t, 20, ClampLimit(0))
	assert.Equal(t, 20, ClampLimit(-5))
	assert.Equal(t, 1, ClampLimit(1))
	assert.Equal(t, 100, ClampLimit(100))
	assert.Equal(t, 100, ClampLimit(1000))
}

func TestClampPage(t *testing.T) {
	assert.Equal(t, 1, ClampPage(0))
	assert.Equal(t, 1, ClampPage(-1))
	assert.Equal(t, 7, ClampPage(7))
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, int64(3), TotalPages(45, 20))
	assert.Equal(t, int64(0), TotalPages(0, 20))
	assert.Equal(t, int64(1), TotalPages(1, 20))
	assert.Equal(t, int64(1), TotalPages(20, 20))
	assert.Equal(t, int64(2), TotalPages(21, 20))
	assert.Equal(t, int64(45), TotalPages(45, 1))
}

func validInput() CreateRegistrationInput {
	return CreateRegistrationInput{
		FirstName:   "ramesh",
		MiddleName:  "kumar",
		LastName:    "PATEL",
		Gender:      "male",
		Birthday:    "1990-04-12",
		Street:      "12 Station Road",
		City:        "Surat",
		State:       "Gujarat",
		ZipCode:     "395003",
		Phone:       "+919812345678",
		NativePlace: "Bardoli",
	}
}

func TestValidateSubmission(t *testing.T) {
	in := validInput()
	require.NoError(t, validateSubmission(&in))
}

func TestValidateSubmissionMissingField(t *testing.T) {
	in := validInput()
	in.City = "  "

	err := validateSubmission(&in)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "city")
}

func TestValidateSubmissionRejectsUnknownGender(t *testing.T) {
	in := validInput()
	in.Gender = "other"

	err := validateSubmission(&in)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestValidateSubmissionFemaleRequiresRelativePhone(t *testing.T) {
	in := validInput()
	in.Gender = "female"

	err := validateSubmission(&in)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "relative phone")

	in.RelativePhone = "+919812345679"
	require.NoError(t, validateSubmission(&in))
}

func TestValidateSubmissionMaritalStatus(t *testing.T) {
	in := validInput()
	in.MaritalStatus = "married"
	require.NoError(t, validateSubmission(&in))

	in.MaritalStatus = "divorced"
	assert.ErrorIs(t, validateSubmission(&in), ErrValidation)
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Ramesh", capitalize("ramesh"))
	assert.Equal(t, "Ramesh", capitalize("RAMESH"))
	assert.Equal(t, "Ramesh", capitalize("  ramesh "))
	assert.Equal(t, "", capitalize(""))
	assert.Equal(t, "R", capitalize("r"))
}

func TestPhotoExtension(t *testing.T) {
	assert.Equal(t, ".png", photoExtension("me.png"))
	assert.Equal(t, ".jpeg", photoExtension("a.b.jpeg"))
	assert.Equal(t, ".jpg", photoExtension("noextension"))
	assert.Equal(t, ".jpg", photoExtension("trailingdot."))
}

func TestSearchConditionNumericInput(t *testing.T) {
	// A purely numeric search must add the exact serial-number equality on top
	// of the substring group; non-numeric input must not.
	cond, args := searchCondition("7")
	assert.True(t, strings.Contains(cond, "serial_number = ?"))
	assert.Len(t, args, 10)
	assert.Equal(t, int64(7), args[len(args)-1])

	cond, args = searchCondition("patel")
	assert.False(t, strings.Contains(cond, "serial_number"))
	assert.Len(t, args, 9)
	for _, a := range args {
		assert.Equal(t, "%patel%", a)
	}
}

func TestSearchConditionEmpty(t *testing.T) {
	cond, args := searchCondition("   ")
	assert.Empty(t, cond)
	assert.Nil(t, args)
}
