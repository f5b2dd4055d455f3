package macros_test

import (
	"context"
	"fmt"

	"github.com/lwmacct/260119-go-pkg-macroctx/pkg/macros"
)

// Example_setUservalues 演示渲染前设置页面上下文，宏随后读取。
func Example_setUservalues() {
	defer macros.SetUservalues(macros.Values{}, macros.Values{})

	macros.SetUservalues(macros.Values{"title": "Home"}, macros.Values{"lang": "en"})

	fmt.Println(macros.Namespace()["title"])
	fmt.Println(macros.Uservalues()["lang"])

	// Output:
	// Home
	// en
}

// Example_render 演示作用域渲染：退出后恢复原绑定。
func Example_render() {
	pc := macros.NewPageContext()

	_ = pc.Render(context.Background(), macros.Values{"title": "Blog"}, nil, func(ctx context.Context) error {
		fmt.Println("inside:", macros.PageFromContext(ctx).Namespace()["title"])

		return nil
	})
	fmt.Println("after:", len(pc.Namespace()))

	// Output:
	// inside: Blog
	// after: 0
}

// Example_lookupAcronym 演示缩写查询，未命中由调用方决定如何回退。
func Example_lookupAcronym() {
	if full, ok := macros.LookupAcronym("usb"); ok {
		fmt.Println(full)
	}
	if _, ok := macros.LookupAcronym("html"); !ok {
		fmt.Println("html: not found")
	}

	// Output:
	// Universal Serial Bus
	// html: not found
}
