// Package qrimage 生成扫码落地地址的二维码图片
package qrimage

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"strconv"

	qrcode "github.com/skip2/go-qrcode"
)

const dataURLPrefix = "data:image/png;base64,"

// Generator 二维码图片生成器
type Generator struct {
	baseURL *url.URL
	size    int
}

// New appBaseURL 为应用对外地址，必须是绝对地址
func New(appBaseURL string, size int) (*Generator, error) {
	u, err := url.Parse(appBaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse app url: %w", err)
	}
	if !u.IsAbs() || u.Host == "" {
		return nil, fmt.Errorf("app url must be absolute: %q", appBaseURL)
	}
	if size <= 0 {
		return nil, fmt.Errorf("invalid image size: %d", size)
	}
	return &Generator{baseURL: u, size: size}, nil
}

// ScanURL 二维码内容：{app}/qrcodes/{id}/scan
func (g *Generator) ScanURL(id int64) string {
	ref := &url.URL{Path: "/qrcodes/" + strconv.FormatInt(id, 10) + "/scan"}
	return g.baseURL.ResolveReference(ref).String()
}

// PNG 原始图片
func (g *Generator) PNG(id int64) ([]byte, error) {
	png, err := qrcode.Encode(g.ScanURL(id), qrcode.Medium, g.size)
	if err != nil {
		return nil, fmt.Errorf("encode qr code %d: %w", id, err)
	}
	return png, nil
}

// Generate 返回 data URL，前端直接放进 <img src>
func (g *Generator) Generate(id int64) (string, error) {
	png, err := g.PNG(id)
	if err != nil {
		return "", err
	}
	return dataURLPrefix + base64.StdEncoding.EncodeToString(png), nil
}
