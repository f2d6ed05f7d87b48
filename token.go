package envseal

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	// TokenIssuer is the fixed issuer stamped into mock tokens.
	TokenIssuer = "envseal"

	// DefaultExpiryBuffer is subtracted from a token's lifetime when
	// checking expiry: a token inside the buffer counts as expired so
	// callers refresh before the hard deadline.
	DefaultExpiryBuffer = 5 * time.Minute

	defaultSubject  = "anonymous"
	accessTokenTTL  = 30 * time.Minute
	refreshTokenTTL = 24 * time.Hour

	// signaturePlaceholder is the fixed third segment of mock tokens.
	// It is never a cryptographic signature; tokens built here carry no
	// trust and must not be verified against anything.
	signaturePlaceholder = "unsigned"
)

// tokenParser decodes token segments without verifying the signature.
// Padded base64url segments are tolerated.
var tokenParser = jwt.NewParser(jwt.WithPaddingAllowed())

// IsJWT reports whether s is structurally a JWT: exactly three dot-joined
// segments. A blob with no dot at all is likely an encrypted envelope
// rather than a malformed token.
func IsJWT(s string) bool {
	return strings.Count(s, ".") == 2
}

// ParseToken splits a token into its three segments and base64url-decodes
// the header and claims segments. The signature segment is ignored;
// nothing is verified.
//
// Failures are distinguishable via errors.Is: ErrTokenFormat for a wrong
// segment count (the message notes when the dotless input looks like an
// encrypted envelope instead), ErrTokenDecode for segments that are not
// base64url or not JSON.
func ParseToken(token string) (jwt.MapClaims, error) {
	if !IsJWT(token) {
		if !strings.Contains(token, ".") {
			return nil, fmt.Errorf("%w: no segment separators; input looks like an encrypted envelope", ErrTokenFormat)
		}
		return nil, fmt.Errorf("%w: got %d segments, want 3", ErrTokenFormat, strings.Count(token, ".")+1)
	}

	claims := jwt.MapClaims{}
	if _, _, err := tokenParser.ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenDecode, err)
	}

	return claims, nil
}

// DecodeToken is the fail-open form of ParseToken. By contract it returns
// nil rather than an error for anything that is not a decodable token:
// callers treat that as a normal display state, not an exceptional one.
func DecodeToken(token string) jwt.MapClaims {
	claims, err := ParseToken(token)
	if err != nil {
		return nil
	}
	return claims
}

// Header returns the decoded header segment of a token, or nil when the
// token is not decodable.
func Header(token string) map[string]any {
	if !IsJWT(token) {
		return nil
	}

	tok, _, err := tokenParser.ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return nil
	}

	return tok.Header
}

// ExpiresAt returns the token's expiry instant. The second result is
// false when the token is not decodable or carries no exp claim.
func ExpiresAt(token string) (time.Time, bool) {
	return numericDateClaim(token, func(c jwt.MapClaims) (*jwt.NumericDate, error) {
		return c.GetExpirationTime()
	})
}

// IssuedAt returns the token's issued-at instant. The second result is
// false when the token is not decodable or carries no iat claim.
func IssuedAt(token string) (time.Time, bool) {
	return numericDateClaim(token, func(c jwt.MapClaims) (*jwt.NumericDate, error) {
		return c.GetIssuedAt()
	})
}

func numericDateClaim(token string, get func(jwt.MapClaims) (*jwt.NumericDate, error)) (time.Time, bool) {
	claims := DecodeToken(token)
	if claims == nil {
		return time.Time{}, false
	}

	date, err := get(claims)
	if err != nil || date == nil {
		return time.Time{}, false
	}

	return date.Time, true
}

// IsExpired reports whether the token is expired with the default
// five-minute buffer applied.
func IsExpired(token string) bool {
	return IsExpiredWithin(token, DefaultExpiryBuffer)
}

// IsExpiredWithin reports whether the token expires within the given
// buffer from now (exp <= now+buffer). A token without a readable exp
// claim counts as expired: the check fails safe.
func IsExpiredWithin(token string, buffer time.Duration) bool {
	exp, ok := ExpiresAt(token)
	if !ok {
		return true
	}

	return !exp.After(time.Now().Add(buffer))
}

// TimeRemaining returns the time until the token's expiry, floored at
// zero. A token without a readable exp claim has zero time remaining.
func TimeRemaining(token string) time.Duration {
	exp, ok := ExpiresAt(token)
	if !ok {
		return 0
	}

	remaining := time.Duration(exp.UnixMilli()-time.Now().UnixMilli()) * time.Millisecond
	if remaining < 0 {
		return 0
	}

	return remaining
}

// TokenUserInfo projects the domain claims of a token for display.
type TokenUserInfo struct {
	// UserID is the user_id claim.
	UserID string
	// SessionID is the session_id claim.
	SessionID string
	// Role is the role claim.
	Role string
	// RoleProfile is the nested access-scope object, if present.
	RoleProfile map[string]any
	// ExpiresAt is the expiry instant; zero when the exp claim is absent.
	ExpiresAt time.Time
	// IssuedAt is the issued-at instant; zero when the iat claim is absent.
	IssuedAt time.Time
}

// UserInfo extracts the user-facing claims of a token. Returns nil when
// the token is not decodable.
func UserInfo(token string) *TokenUserInfo {
	claims := DecodeToken(token)
	if claims == nil {
		return nil
	}

	info := &TokenUserInfo{
		UserID:    stringClaim(claims, "user_id"),
		SessionID: stringClaim(claims, "session_id"),
		Role:      stringClaim(claims, "role"),
	}

	if profile, ok := claims["role_profile"].(map[string]any); ok {
		info.RoleProfile = profile
	}

	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		info.ExpiresAt = exp.Time
	}

	if iat, err := claims.GetIssuedAt(); err == nil && iat != nil {
		info.IssuedAt = iat.Time
	}

	return info
}

func stringClaim(claims jwt.MapClaims, key string) string {
	s, _ := claims[key].(string)
	return s
}

// TokenSummary is a display-oriented digest of a token.
type TokenSummary struct {
	// Valid is false when the token is expired (default buffer applied).
	Valid bool
	// Remaining is the time to expiry floored to whole minutes, e.g. "12 min".
	Remaining string
	// UserID is the user_id claim.
	UserID string
	// Role is the role claim.
	Role string
	// ExpiresAt is the RFC 3339 expiry instant, empty when absent.
	ExpiresAt string
}

// Summarize combines the derived accessors into one view. Returns nil
// when the token is not decodable.
func Summarize(token string) *TokenSummary {
	info := UserInfo(token)
	if info == nil {
		return nil
	}

	summary := &TokenSummary{
		Valid:     !IsExpired(token),
		Remaining: fmt.Sprintf("%d min", int(TimeRemaining(token).Minutes())),
		UserID:    info.UserID,
		Role:      info.Role,
	}

	if !info.ExpiresAt.IsZero() {
		summary.ExpiresAt = info.ExpiresAt.UTC().Format(time.RFC3339)
	}

	return summary
}

// defaultRoleProfile is the access-scope object stamped into mock tokens
// when the caller supplies none. Caller-provided keys are merged over it.
func defaultRoleProfile() map[string]any {
	return map[string]any{
		"role":        "user",
		"permissions": []any{"read"},
	}
}

// EncodeToken builds an unsigned three-segment token from partial claims.
// Recognized fields receive defaults when absent:
//
//   - iss: TokenIssuer; sub: a fixed placeholder
//   - iat: now; exp: iat+30m, or iat+24h when token_type is "refresh"
//   - jti and session_id: fresh random UUIDs
//   - role_profile: defaultRoleProfile with caller keys merged over it
//
// Explicit caller fields always win; unrecognized fields pass through
// untouched. The third segment is a fixed placeholder, never a real
// signature, so the result must not be treated as trust-verifiable.
func EncodeToken(claims map[string]any) (string, error) {
	now := time.Now()

	ttl := accessTokenTTL
	if tokenType, _ := claims["token_type"].(string); tokenType == "refresh" {
		ttl = refreshTokenTTL
	}

	merged := jwt.MapClaims{
		"iss":        TokenIssuer,
		"sub":        defaultSubject,
		"iat":        now.Unix(),
		"exp":        now.Add(ttl).Unix(),
		"jti":        uuid.NewString(),
		"session_id": uuid.NewString(),
	}

	profile := defaultRoleProfile()
	if overrides, ok := claims["role_profile"].(map[string]any); ok {
		for k, v := range overrides {
			profile[k] = v
		}
	}
	merged["role_profile"] = profile

	for k, v := range claims {
		if k == "role_profile" {
			continue
		}
		merged[k] = v
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, merged)
	signing, err := tok.SigningString()
	if err != nil {
		return "", fmt.Errorf("encode token claims: %w", err)
	}

	return signing + "." + signaturePlaceholder, nil
}
