package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type signupFixture struct {
	FirstName string `form:"first_name" validate:"required,min=2,max=256"`
	Email     string `form:"email" validate:"required,email"`
	Phone     string `form:"phone" validate:"required,ilphone"`
	Password  string `form:"password" validate:"required,min=7,max=20,complexity"`
}

func validFixture() signupFixture {
	return signupFixture{
		FirstName: "Dana",
		Email:     "dana@example.com",
		Phone:     "050-1234567",
		Password:  "Abcdef1!",
	}
}

func TestStruct_Valid(t *testing.T) {
	errs := Struct(validFixture())
	assert.Empty(t, errs)
}

func TestStruct_RequiredFields(t *testing.T) {
	errs := Struct(signupFixture{})
	assert.Equal(t, "First name is required.", errs["first_name"])
	assert.Equal(t, "Email is required.", errs["email"])
	assert.Contains(t, errs, "phone")
	assert.Contains(t, errs, "password")
}

func TestStruct_FieldKeysComeFromFormTags(t *testing.T) {
	errs := Struct(signupFixture{})
	assert.Contains(t, errs, "first_name")
	assert.NotContains(t, errs, "FirstName")
}

func TestStruct_PhoneRule(t *testing.T) {
	for _, valid := range []string{"0501234567", "050-1234567", "031234567"} {
		f := validFixture()
		f.Phone = valid
		assert.NotContains(t, Struct(f), "phone", "phone %q should pass", valid)
	}
	for _, invalid := range []string{"1234567", "05012", "+972501234567", "abc"} {
		f := validFixture()
		f.Phone = invalid
		assert.Equal(t, "Enter a valid phone number.", Struct(f)["phone"], "phone %q should fail", invalid)
	}
}

func TestStruct_PasswordComplexity(t *testing.T) {
	cases := map[string]string{
		"alllowercase1!": "no uppercase",
		"ALLUPPERCASE1!": "no lowercase",
		"NoDigitsHere!":  "no digit",
		"NoSpecial123a":  "no special character",
	}
	for password, reason := range cases {
		f := validFixture()
		f.Password = password
		errs := Struct(f)
		assert.Contains(t, errs, "password", "password with %s should fail", reason)
	}
}

func TestStruct_PasswordLength(t *testing.T) {
	f := validFixture()
	f.Password = "Ab1!"
	errs := Struct(f)
	assert.Equal(t, "Password must be at least 7 characters.", errs["password"])
}

func TestStruct_MinLength(t *testing.T) {
	f := validFixture()
	f.FirstName = "D"
	errs := Struct(f)
	assert.Equal(t, "First name must be at least 2 characters.", errs["first_name"])
}

func TestStruct_Email(t *testing.T) {
	f := validFixture()
	f.Email = "not-an-email"
	errs := Struct(f)
	assert.Equal(t, "Enter a valid email address.", errs["email"])
}
