package middleware

import (
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"qrcode_admin_v1/pkg/shopify"
)

// ==================== 配置 ====================

// SessionTokenConfig App Bridge session token 校验配置
type SessionTokenConfig struct {
	APIKey    string        // aud 必须等于 API Key
	APISecret string        // HS256 签名密钥
	Leeway    time.Duration // exp/nbf 容忍的时钟偏差
}

// ==================== Claims 定义 ====================

// SessionClaims Shopify session token
// iss: https://{shop}/admin, dest: https://{shop}
type SessionClaims struct {
	Dest string `json:"dest"`
	SID  string `json:"sid,omitempty"`
	jwt.RegisteredClaims
}

// ==================== Token 解析 ====================

var (
	errInvalidDest    = errors.New("invalid dest claim")
	errIssuerMismatch = errors.New("iss does not match dest")

	// ErrMissingAPIKey 未配置 API Key 时无法校验 aud
	ErrMissingAPIKey = errors.New("session token: api key is not configured")
)

// ParseSessionToken 校验签名和有效期，返回店铺域名
func ParseSessionToken(cfg SessionTokenConfig, tokenString string) (string, *SessionClaims, error) {
	if cfg.APIKey == "" {
		return "", nil, ErrMissingAPIKey
	}
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(cfg.Leeway),
		jwt.WithAudience(cfg.APIKey),
	}

	claims := &SessionClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(cfg.APISecret), nil
	}, opts...)
	if err != nil {
		return "", nil, err
	}

	dest, err := url.Parse(claims.Dest)
	if err != nil || dest.Scheme != "https" || !shopify.ValidShopDomain(dest.Host) {
		return "", nil, errInvalidDest
	}
	if iss, err := url.Parse(claims.Issuer); err != nil || iss.Host != dest.Host {
		return "", nil, errIssuerMismatch
	}
	return dest.Host, claims, nil
}

// NewSessionToken 签发 session token，用于本地调试和测试
func NewSessionToken(cfg SessionTokenConfig, shop string, ttl time.Duration) (string, error) {
	if cfg.APIKey == "" {
		return "", ErrMissingAPIKey
	}
	now := time.Now()
	claims := &SessionClaims{
		Dest: "https://" + shop,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "https://" + shop + "/admin",
			Subject:   "dev",
			Audience:  jwt.ClaimStrings{cfg.APIKey},
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.APISecret))
}

// ==================== Gin 中间件 ====================

// ContextKeyShop gin context 中的店铺域名
const ContextKeyShop = "shop"

// SessionToken 后台接口认证
// 从 Authorization: Bearer {token} 解析店铺，写入 gin context 和 request context
func SessionToken(cfg SessionTokenConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			unauthorized(c, "missing session token")
			return
		}

		shop, _, err := ParseSessionToken(cfg, parts[1])
		if err != nil {
			unauthorized(c, "invalid session token")
			return
		}

		c.Set(ContextKeyShop, shop)
		c.Request = c.Request.WithContext(WithShop(c.Request.Context(), shop))
		c.Next()
	}
}

func unauthorized(c *gin.Context, msg string) {
	// App Bridge 看到这个头会刷新 token 后重试
	c.Header("X-Shopify-Retry-Invalid-Session-Request", "1")
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
}

// ==================== 辅助函数 ====================

// GetShop 当前请求的店铺
func GetShop(c *gin.Context) string {
	if shop, exists := c.Get(ContextKeyShop); exists {
		return shop.(string)
	}
	return ""
}
