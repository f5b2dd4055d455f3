package macros

import (
	"context"
)

// 进程级页面上下文，供无法获得显式上下文的宏使用。
//
//nolint:gochecknoglobals
var defaultPage = NewPageContext()

// Default 返回进程级 [PageContext]。
func Default() *PageContext {
	return defaultPage
}

// SetUservalues 设置进程级页面上下文，见 [PageContext.SetUservalues]。
func SetUservalues(namespace, uservalues Values) {
	defaultPage.SetUservalues(namespace, uservalues)
}

// Namespace 返回进程级 namespace。
func Namespace() Values {
	return defaultPage.Namespace()
}

// Uservalues 返回进程级 uservalues。
func Uservalues() Values {
	return defaultPage.Uservalues()
}

// Render 在进程级页面上下文上执行 fn，见 [PageContext.Render]。
func Render(ctx context.Context, namespace, uservalues Values, fn func(ctx context.Context) error) error {
	return defaultPage.Render(ctx, namespace, uservalues, fn)
}

type pageContextKey struct{}

// WithPage 返回携带独立页面上下文的 ctx。
//
// 适合并发渲染：每个页面持有自己的 [PageContext]，不经过进程级状态。
func WithPage(ctx context.Context, namespace, uservalues Values) context.Context {
	pc := NewPageContext()
	pc.SetUservalues(namespace, uservalues)

	return withPageContext(ctx, pc)
}

func withPageContext(ctx context.Context, pc *PageContext) context.Context {
	return context.WithValue(ctx, pageContextKey{}, pc)
}

// PageFromContext 返回 ctx 携带的页面上下文，未携带时回退到 [Default]。
func PageFromContext(ctx context.Context) *PageContext {
	if pc, ok := ctx.Value(pageContextKey{}).(*PageContext); ok && pc != nil {
		return pc
	}

	return defaultPage
}
