// Package tokencodec reads claim sets out of bearer tokens issued by the
// remote users service without verifying them. The service signs and expires
// tokens itself; client-side we only need the identity and role flags, so a
// structural parse is the whole contract.
package tokencodec

import (
	"github.com/golang-jwt/jwt/v5"

	domainauth "github.com/jersab/Poject-BizCardHub/internal/domain/auth"
	apperrors "github.com/jersab/Poject-BizCardHub/internal/errors"
	"github.com/jersab/Poject-BizCardHub/internal/ports"
)

// tokenClaims is the wire shape of the users service's JWT payload.
type tokenClaims struct {
	UserID     string `json:"_id"`
	IsBusiness bool   `json:"isBusiness"`
	IsAdmin    bool   `json:"isAdmin"`
	jwt.RegisteredClaims
}

// Decoder implements ports.TokenDecoder via an unverified JWT parse.
type Decoder struct{}

var _ ports.TokenDecoder = Decoder{}

// New returns a Decoder.
func New() Decoder { return Decoder{} }

// Decode parses the raw credential into a claim set. A string that is not
// structurally a JWT fails with a decode error; signature and expiry are
// deliberately not checked here.
func (Decoder) Decode(raw string) (domainauth.Claims, error) {
	if raw == "" {
		return domainauth.Claims{}, apperrors.Decode("empty credential")
	}

	parser := jwt.NewParser()
	token, _, err := parser.ParseUnverified(raw, &tokenClaims{})
	if err != nil {
		return domainauth.Claims{}, apperrors.Wrap(err, apperrors.ErrCodeDecode, "parse credential")
	}

	claims, ok := token.Claims.(*tokenClaims)
	if !ok {
		return domainauth.Claims{}, apperrors.Decode("unexpected claims shape")
	}
	if claims.UserID == "" {
		return domainauth.Claims{}, apperrors.Decode("credential missing user id")
	}

	return domainauth.Claims{
		UserID:     claims.UserID,
		IsBusiness: claims.IsBusiness,
		IsAdmin:    claims.IsAdmin,
	}, nil
}
