package page

import (
	"fmt"
	"sync"
)

// Page 页面标识，封闭枚举，避免字符串分发时静默漏渲染
type Page string

const (
	PageMain           Page = "main"
	PageLicenseDetails Page = "license_details"
	PageBilling        Page = "billing"
	PagePackaging      Page = "packaging"
	PageConfiguration  Page = "configuration"
)

// DetailPages 所有可从 main 进入的详情页，顺序即展示顺序
var DetailPages = []Page{
	PageLicenseDetails,
	PageBilling,
	PagePackaging,
	PageConfiguration,
}

// ParsePage 解析页面名称，未声明的名称返回错误
func ParsePage(s string) (Page, error) {
	switch Page(s) {
	case PageMain, PageLicenseDetails, PageBilling, PagePackaging, PageConfiguration:
		return Page(s), nil
	}
	return "", fmt.Errorf("未知的页面: %q", s)
}

// IsDetail 是否为详情页
func (p Page) IsDetail() bool {
	for _, d := range DetailPages {
		if p == d {
			return true
		}
	}
	return false
}

// Router 会话级页面状态机：main 可进入任一详情页，
// 详情页只能返回 main，详情页之间不存在直接跳转
type Router struct {
	mu      sync.Mutex
	current Page
}

// NewRouter 初始状态为 main
func NewRouter() *Router {
	return &Router{current: PageMain}
}

// Current 返回当前页面
func (r *Router) Current() Page {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// Navigate 从 main 进入详情页
func (r *Router) Navigate(target Page) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !target.IsDetail() {
		return fmt.Errorf("无法导航到页面: %q", target)
	}
	if r.current != PageMain {
		return fmt.Errorf("只能从 main 页进入详情页，当前页面: %q", r.current)
	}

	r.current = target
	return nil
}

// Back 从详情页返回 main
func (r *Router) Back() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.current == PageMain {
		return fmt.Errorf("已在 main 页，无法返回")
	}

	r.current = PageMain
	return nil
}
