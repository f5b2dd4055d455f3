// Package macros 为站点生成器的用户宏提供运行时上下文。
//
// 宏在页面渲染过程中执行，需要读取两类数据：
//
//   - 缩写表 ([Acronyms])：缩写 → 全称，默认包含 usb 与 YAGNI
//   - 页面上下文 ([PageContext])：namespace（模板变量）与 uservalues（用户配置值）
//
// 本包只负责存储，不负责渲染，也不定义宏的调用方式。
//
// # 页面上下文
//
// 渲染流程在每个页面开始前调用 [SetUservalues] 整体替换两个映射，
// 宏随后通过 [Namespace] / [Uservalues] 读取：
//
//	macros.SetUservalues(
//	    macros.Values{"title": "Home"},
//	    macros.Values{"lang": "en"},
//	)
//	title := macros.Namespace()["title"] // "Home"
//
// 语义说明：
//
//  1. 整体替换，不合并；最后一次调用生效
//  2. 不做防御性拷贝，调用方之后对映射的修改对宏可见
//  3. 不做任何校验，nil 视为空映射
//
// # 并发
//
// 进程级状态由读写锁保护，但锁只保证绑定本身不被撕裂。
//
// [Render] 为页面建立作用域：同一 [PageContext] 上的 Render 串行执行，退出时恢复原绑定，
// 等待渲染锁时响应 ctx 的取消与超时。适合单条渲染流水线：
//
//	err := macros.Render(ctx, ns, uv, func(ctx context.Context) error {
//	    return engine.Execute(ctx, page)
//	})
//
// fn 内可以用它收到的 ctx 再次调用同一上下文的 Render（例如渲染被包含的页面），
// 嵌套调用只替换并恢复绑定，不再等待渲染锁。
//
// 多个页面需要真正并发渲染时，请为每个页面使用 [WithPage] 创建独立上下文，
// 宏通过 [PageFromContext] 读取：
//
//	ctx = macros.WithPage(ctx, ns, uv)
//	title := macros.PageFromContext(ctx).Namespace()["title"]
//
// # 缩写表
//
// 默认表见 [DefaultAcronyms]。嵌入方在启动时通过 [SetAcronyms] 注入扩展后的表，
// 宏通过 [LookupAcronym] 查询；查询未命中时返回 false，不会插入新条目。
package macros
