// Package shopify Shopify Admin GraphQL 商品查询客户端
package shopify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// ErrUpstream 商品目录调用失败 (网络、非 2xx、GraphQL errors)
// 与 "商品已删除" 严格区分，调用方不得把它当成商品不存在
var ErrUpstream = errors.New("shopify: upstream failure")

const (
	DefaultAPIVersion = "2025-01"
	defaultTimeout    = 20 * time.Second
)

var shopDomainRe = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9\-]*\.myshopify\.com$`)

// ValidShopDomain 校验 xxx.myshopify.com
func ValidShopDomain(shop string) bool {
	return shopDomainRe.MatchString(shop)
}

// Config 客户端配置
type Config struct {
	APIVersion string
	Timeout    time.Duration
	RetryCount int
	// BaseURL 覆盖 https://{shop}，测试用
	BaseURL string
	Debug   bool
}

// Product 商品目录里与二维码相关的字段
type Product struct {
	ID       string
	Title    string
	ImageURL string // 无图片时为空
	AltText  string
}

// Client 单个店铺的 Admin API 客户端
type Client struct {
	http     *resty.Client
	endpoint string
}

// NewClient 创建店铺客户端
func NewClient(shop, accessToken string, cfg Config) *Client {
	version := cfg.APIVersion
	if version == "" {
		version = DefaultAPIVersion
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		base = "https://" + shop
	}

	httpClient := resty.New().
		SetDebug(cfg.Debug).
		SetTimeout(timeout).
		SetHeader("User-Agent", "qrcode-admin/1.0").
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetHeader("X-Shopify-Access-Token", accessToken).
		SetRetryCount(cfg.RetryCount).
		SetRetryWaitTime(200 * time.Millisecond).
		SetRetryMaxWaitTime(2 * time.Second).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			// 限流和 5xx 重试
			if err != nil {
				return true
			}
			return r.StatusCode() == http.StatusTooManyRequests || r.StatusCode() >= 500
		})

	return &Client{
		http:     httpClient,
		endpoint: fmt.Sprintf("%s/admin/api/%s/graphql.json", base, version),
	}
}

// ==================== GraphQL ====================

const productFields = `id title images(first: 1) { nodes { url altText } }`

const productQuery = `query productForQRCode($id: ID!) { product(id: $id) { ` + productFields + ` } }`

// maxNodeIDs Admin API nodes(ids:) 的上限
const maxNodeIDs = 250

const productsQuery = `query productsForQRCodes($ids: [ID!]!) { nodes(ids: $ids) { ... on Product { ` + productFields + ` } } }`

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphQLError struct {
	Message string `json:"message"`
}

type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphQLError  `json:"errors"`
}

type productNode struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Images struct {
		Nodes []struct {
			URL     string `json:"url"`
			AltText string `json:"altText"`
		} `json:"nodes"`
	} `json:"images"`
}

// toProduct 标题为空视为商品不存在
func (n *productNode) toProduct(id string) *Product {
	if n == nil || n.Title == "" {
		return nil
	}
	p := &Product{ID: id, Title: n.Title}
	if len(n.Images.Nodes) > 0 {
		p.ImageURL = n.Images.Nodes[0].URL
		p.AltText = n.Images.Nodes[0].AltText
	}
	return p
}

// do 执行查询并把 data 解到 out
func (c *Client) do(ctx context.Context, query string, variables map[string]any, out any) error {
	var body graphQLResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(graphQLRequest{Query: query, Variables: variables}).
		SetResult(&body).
		SetError(&body).
		Post(c.endpoint)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	if resp.IsError() {
		return fmt.Errorf("%w: status %d: %s", ErrUpstream, resp.StatusCode(), resp.String())
	}
	if len(body.Errors) > 0 {
		msgs := make([]string, 0, len(body.Errors))
		for _, e := range body.Errors {
			msgs = append(msgs, e.Message)
		}
		return fmt.Errorf("%w: graphql: %s", ErrUpstream, strings.Join(msgs, "; "))
	}
	if len(body.Data) == 0 {
		return fmt.Errorf("%w: empty data", ErrUpstream)
	}
	if err := json.Unmarshal(body.Data, out); err != nil {
		return fmt.Errorf("%w: decode data: %w", ErrUpstream, err)
	}
	return nil
}

// Product 查询单个商品，不存在返回 nil, nil
func (c *Client) Product(ctx context.Context, id string) (*Product, error) {
	if id == "" {
		return nil, nil
	}
	var data struct {
		Product *productNode `json:"product"`
	}
	if err := c.do(ctx, productQuery, map[string]any{"id": id}, &data); err != nil {
		return nil, err
	}
	return data.Product.toProduct(id), nil
}

// Products 批量查询，一次请求
// 结果只包含存在的商品；空 id 和重复 id 会被去掉，全部为空时不发请求
func (c *Client) Products(ctx context.Context, ids []string) (map[string]*Product, error) {
	unique := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	result := make(map[string]*Product, len(unique))
	if len(unique) == 0 {
		return result, nil
	}

	// nodes(ids:) 单次最多 maxNodeIDs 个，超出时分页
	for start := 0; start < len(unique); start += maxNodeIDs {
		page := unique[start:min(start+maxNodeIDs, len(unique))]

		var data struct {
			Nodes []*productNode `json:"nodes"`
		}
		if err := c.do(ctx, productsQuery, map[string]any{"ids": page}, &data); err != nil {
			return nil, err
		}

		// nodes 与 ids 按下标一一对应
		for i, node := range data.Nodes {
			if i >= len(page) {
				break
			}
			if p := node.toProduct(page[i]); p != nil {
				result[page[i]] = p
			}
		}
	}
	return result, nil
}
