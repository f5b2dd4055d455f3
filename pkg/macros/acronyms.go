package macros

import (
	"errors"
	"maps"
	"slices"
	"strings"
	"sync"
)

// ErrUnknownAcronym 表示缩写表中不存在该条目。
var ErrUnknownAcronym = errors.New("macros: unknown acronym")

// Acronyms 缩写 → 全称。
//
// key 约定为小写，但不强制（默认表中的 YAGNI 即为例外）。
type Acronyms map[string]string

// DefaultAcronyms 返回默认缩写表的新副本。
func DefaultAcronyms() Acronyms {
	return Acronyms{
		"usb":   "Universal Serial Bus",
		"YAGNI": "You Aint Gonna Need It",
	}
}

// Lookup 查询缩写，先精确匹配，再尝试小写 key。
//
// 未命中返回 ("", false)；不会修改表。
func (a Acronyms) Lookup(term string) (string, bool) {
	if full, ok := a[term]; ok {
		return full, true
	}
	if lower := strings.ToLower(term); lower != term {
		if full, ok := a[lower]; ok {
			return full, true
		}
	}

	return "", false
}

// Merge 返回新表，extra 中的条目覆盖 a 中的同名条目。
func (a Acronyms) Merge(extra Acronyms) Acronyms {
	out := make(Acronyms, len(a)+len(extra))
	maps.Copy(out, a)
	maps.Copy(out, extra)

	return out
}

// Terms 返回排序后的全部缩写。
func (a Acronyms) Terms() []string {
	return slices.Sorted(maps.Keys(a))
}

//nolint:gochecknoglobals
var (
	acronymMu sync.RWMutex
	acronyms  = DefaultAcronyms()
)

// AcronymTable 返回进程级缩写表。
//
// 返回值按约定只读；需要扩展时使用 [SetAcronyms]。
func AcronymTable() Acronyms {
	acronymMu.RLock()
	defer acronymMu.RUnlock()

	return acronyms
}

// SetAcronyms 替换进程级缩写表，通常在启动阶段调用一次。
//
// nil 会被视为空表。
func SetAcronyms(table Acronyms) {
	if table == nil {
		table = Acronyms{}
	}

	acronymMu.Lock()
	acronyms = table
	acronymMu.Unlock()
}

// LookupAcronym 在进程级缩写表中查询，语义同 [Acronyms.Lookup]。
func LookupAcronym(term string) (string, bool) {
	return AcronymTable().Lookup(term)
}
