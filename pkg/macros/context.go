package macros

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"
)

// Values 页面映射（namespace / uservalues）的形状，不约束 schema。
type Values = map[string]any

// PageContext 保存当前页面的 namespace 与 uservalues。
//
// 零值不可用，请使用 [NewPageContext]。所有方法并发安全。
type PageContext struct {
	mu         sync.RWMutex
	namespace  Values
	uservalues Values

	// render 串行化 Render，保证同一时刻只有一个页面绑定在该上下文上
	render *semaphore.Weighted
}

// NewPageContext 创建空的页面上下文，两个映射均为非 nil 的空映射。
func NewPageContext() *PageContext {
	return &PageContext{
		namespace:  Values{},
		uservalues: Values{},
		render:     semaphore.NewWeighted(1),
	}
}

// SetUservalues 整体替换 namespace 与 uservalues。
//
// 不合并、不拷贝、不校验：之后读取到的就是传入的同一个映射。
func (pc *PageContext) SetUservalues(namespace, uservalues Values) {
	pc.mu.Lock()
	pc.namespace = namespace
	pc.uservalues = uservalues
	pc.mu.Unlock()
}

// Namespace 返回当前绑定的 namespace。
func (pc *PageContext) Namespace() Values {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	return pc.namespace
}

// Uservalues 返回当前绑定的 uservalues。
func (pc *PageContext) Uservalues() Values {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	return pc.uservalues
}

// Snapshot 在同一把读锁下返回 (namespace, uservalues)，两者必然来自同一次 SetUservalues。
func (pc *PageContext) Snapshot() (Values, Values) {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	return pc.namespace, pc.uservalues
}

// Render 在页面作用域内执行 fn。
//
// 流程：
//  1. 获取渲染锁（同一 PageContext 上的 Render 串行执行），等待期间响应 ctx 取消
//  2. 绑定 namespace / uservalues
//  3. 以携带该上下文的 ctx 调用 fn
//  4. 退出时恢复进入前的绑定（fn 返回 error 或 panic 均会恢复）
//
// 在 fn 内以其 ctx 嵌套调用同一 PageContext 的 Render 时不再加锁，只替换并恢复绑定。
// 该 ctx 不应在 fn 返回后继续使用。
//
// fn 的 error 原样返回；等锁期间 ctx 结束时返回 ctx.Err()。
func (pc *PageContext) Render(ctx context.Context, namespace, uservalues Values, fn func(ctx context.Context) error) error {
	nested := renderingIn(ctx, pc)
	if !nested {
		if err := pc.render.Acquire(ctx, 1); err != nil {
			return err
		}
		defer pc.render.Release(1)
	}

	prevNamespace, prevUservalues := pc.Snapshot()
	pc.SetUservalues(namespace, uservalues)
	defer pc.SetUservalues(prevNamespace, prevUservalues)

	renderID := uuid.NewString()
	slog.DebugContext(ctx, "Page render started", "render", renderID, "nested", nested,
		"namespace", len(namespace), "uservalues", len(uservalues))

	err := fn(withRendering(withPageContext(ctx, pc), pc))
	if err != nil {
		slog.DebugContext(ctx, "Page render failed", "render", renderID, "error", err)

		return err
	}

	slog.DebugContext(ctx, "Page render finished", "render", renderID)

	return nil
}

// renderingKey 标记 ctx 处于某个 PageContext 的 Render 作用域内。
type renderingKey struct{ pc *PageContext }

func withRendering(ctx context.Context, pc *PageContext) context.Context {
	return context.WithValue(ctx, renderingKey{pc}, true)
}

func renderingIn(ctx context.Context, pc *PageContext) bool {
	v, _ := ctx.Value(renderingKey{pc}).(bool)

	return v
}
