package disputeconsolesdk

import (
	"context"
	"fmt"
	"net/http"
)

// SearchQuery 是绑定了固定检索条件的惰性分页查询。构造时不做任何 I/O，
// 每次 Iterator() 都从第 1 页重新开始，同一个查询可以反复迭代。
type SearchQuery struct {
	http     Transport
	root     string
	criteria *SearchCriteria
}

// Iterator 返回一个新的迭代器。迭代器之间互不影响。
func (q *SearchQuery) Iterator() *DisputeIterator {
	return &DisputeIterator{query: q, page: 1}
}

// Each 对检索结果逐条执行 fn（从第 1 页开始），fn 返回错误则中止并透传。
func (q *SearchQuery) Each(ctx context.Context, fn func(*Dispute) error) error {
	it := q.Iterator()
	for it.Next(ctx) {
		if err := fn(it.Dispute()); err != nil {
			return err
		}
	}
	return it.Err()
}

// DisputeIterator 逐条产出检索命中的争议记录，页数据按需拉取：
// 每前进到缓冲区末尾才请求下一页，直到产出数达到 totalItems。
// 中途放弃迭代没有任何清理义务（页与页之间不持有连接）。
type DisputeIterator struct {
	query *SearchQuery

	page    int
	total   int
	started bool
	done    bool
	err     error

	buf     []Dispute
	idx     int
	yielded int
}

// Next 推进到下一条记录。返回 false 表示耗尽或出错（用 Err 区分）。
// 耗尽之后再调用 Next 不会发起新的请求。
func (it *DisputeIterator) Next(ctx context.Context) bool {
	if it.done || it.err != nil {
		return false
	}

	if it.idx >= len(it.buf) {
		if it.started && it.yielded >= it.total {
			it.done = true
			return false
		}
		if !it.fetchPage(ctx) {
			return false
		}
	}

	it.idx++
	it.yielded++
	if it.yielded >= it.total && it.idx >= len(it.buf) {
		// 当前页就是最后一条：直接标记耗尽，避免额外的空页请求。
		it.done = true
	}
	return true
}

// Dispute 返回当前记录，仅在 Next 返回 true 后有效。
func (it *DisputeIterator) Dispute() *Dispute {
	if it.idx == 0 || it.idx > len(it.buf) {
		return nil
	}
	return &it.buf[it.idx-1]
}

// Err 返回迭代过程中的第一个错误。正常耗尽时为 nil。
func (it *DisputeIterator) Err() error {
	return it.err
}

// TotalItems 返回网关报告的命中总数，第一页拉取后可用。
func (it *DisputeIterator) TotalItems() int {
	return it.total
}

func (it *DisputeIterator) fetchPage(ctx context.Context) bool {
	q := it.query

	var out searchPageResponse
	path := fmt.Sprintf("%s/advanced_search?page=%d", q.root, it.page)
	if err := q.http.Post(ctx, path, searchRequest{Search: q.criteria.payload()}, &out); err != nil {
		it.err = err
		return false
	}
	if out.APIErrorResponse != nil {
		it.err = &APIError{StatusCode: http.StatusOK, Body: out.APIErrorResponse}
		return false
	}

	it.started = true
	it.total = out.TotalItems
	it.page++
	it.buf = out.Disputes
	it.idx = 0

	if it.yielded >= it.total {
		// 命中总数为 0（或已全部产出）：到此为止。
		it.done = true
		return false
	}
	if len(out.Disputes) == 0 {
		// 网关声称还有剩余却返回空页，继续翻页只会死循环，按协议异常处理。
		it.err = fmt.Errorf("advanced_search page %d: empty page with %d of %d items yielded", it.page-1, it.yielded, it.total)
		return false
	}
	return true
}
