package disputeconsolesdk

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// pagedMock 按 page 参数返回预设分页响应，并统计请求次数。
type pagedMock struct {
	mockTransport
	pages map[int]string
}

func newPagedMock(pages map[int]string) *pagedMock {
	m := &pagedMock{pages: pages}
	m.respond = func(_, path string, _, out any) error {
		var page int
		idx := strings.Index(path, "page=")
		if idx < 0 {
			return fmt.Errorf("path 缺少 page 参数: %s", path)
		}
		if _, err := fmt.Sscanf(path[idx:], "page=%d", &page); err != nil {
			return err
		}
		body, ok := m.pages[page]
		if !ok {
			return fmt.Errorf("意外的页请求: page=%d", page)
		}
		return json.Unmarshal([]byte(body), out)
	}
	return m
}

func searchPages() map[int]string {
	return map[int]string{
		1: `{"totalItems": 5, "pageSize": 2, "disputes": [{"id": "d1", "amount": "1.00"}, {"id": "d2", "amount": "2.00"}]}`,
		2: `{"totalItems": 5, "pageSize": 2, "disputes": [{"id": "d3", "amount": "3.00"}, {"id": "d4", "amount": "4.00"}]}`,
		3: `{"totalItems": 5, "pageSize": 2, "disputes": [{"id": "d5", "amount": "5.00"}]}`,
	}
}

func TestSearch_NoRequestUntilIteration(t *testing.T) {
	mock := newPagedMock(searchPages())
	d := newTestDisputes(&mock.mockTransport)

	q := d.Search(NewSearchCriteria())
	require.Empty(t, mock.calls, "构造查询不应发请求")

	it := q.Iterator()
	require.Empty(t, mock.calls, "构造迭代器也不应发请求")
	require.True(t, it.Next(context.Background()))
	require.Len(t, mock.calls, 1)
}

func TestSearch_YieldsAllPagesInOrder(t *testing.T) {
	mock := newPagedMock(searchPages())
	d := newTestDisputes(&mock.mockTransport)

	c := NewSearchCriteria()
	c.Text("caseNumber").Contains("CASE")
	it := d.Search(c).Iterator()

	var ids []string
	ctx := context.Background()
	for it.Next(ctx) {
		ids = append(ids, it.Dispute().ID)
	}
	require.NoError(t, it.Err())
	require.Equal(t, []string{"d1", "d2", "d3", "d4", "d5"}, ids)
	require.Equal(t, 5, it.TotalItems())

	// 恰好 3 次页请求；耗尽后的 Next 不应再发请求。
	require.Len(t, mock.calls, 3)
	require.False(t, it.Next(ctx))
	require.Len(t, mock.calls, 3)
}

func TestSearch_IteratorRestartsFromPageOne(t *testing.T) {
	mock := newPagedMock(searchPages())
	d := newTestDisputes(&mock.mockTransport)

	q := d.Search(NewSearchCriteria())
	ctx := context.Background()

	first := q.Iterator()
	for first.Next(ctx) {
	}
	require.NoError(t, first.Err())

	second := q.Iterator()
	require.True(t, second.Next(ctx))
	require.Equal(t, "d1", second.Dispute().ID)
	// 第 4 次请求是新迭代器重新从第 1 页开始。
	require.Len(t, mock.calls, 4)
	require.Contains(t, mock.calls[3], "page=1")
}

func TestSearch_EmptyResult(t *testing.T) {
	mock := newPagedMock(map[int]string{
		1: `{"totalItems": 0, "pageSize": 50, "disputes": []}`,
	})
	d := newTestDisputes(&mock.mockTransport)

	it := d.Search(NewSearchCriteria()).Iterator()
	require.False(t, it.Next(context.Background()))
	require.NoError(t, it.Err())
	require.Len(t, mock.calls, 1)
}

func TestSearch_EmptyPageBeforeExhaustion_IsError(t *testing.T) {
	mock := newPagedMock(map[int]string{
		1: `{"totalItems": 4, "pageSize": 2, "disputes": [{"id": "d1", "amount": "1.00"}, {"id": "d2", "amount": "2.00"}]}`,
		2: `{"totalItems": 4, "pageSize": 2, "disputes": []}`,
	})
	d := newTestDisputes(&mock.mockTransport)

	it := d.Search(NewSearchCriteria()).Iterator()
	ctx := context.Background()
	var n int
	for it.Next(ctx) {
		n++
	}
	require.Equal(t, 2, n)
	require.Error(t, it.Err())
	require.Contains(t, it.Err().Error(), "empty page")
}

func TestSearch_PageFetchError_SurfacesViaErr(t *testing.T) {
	boom := &APIError{StatusCode: 503, Raw: "unavailable"}
	mock := &mockTransport{respond: func(_, _ string, _, _ any) error { return boom }}
	d := newTestDisputes(mock)

	it := d.Search(NewSearchCriteria()).Iterator()
	require.False(t, it.Next(context.Background()))
	require.Same(t, boom, it.Err())
}

func TestSearch_EnvelopeOnPage_IsError(t *testing.T) {
	mock := newPagedMock(map[int]string{
		1: `{"apiErrorResponse": {"message": "search criteria too broad"}}`,
	})
	d := newTestDisputes(&mock.mockTransport)

	it := d.Search(NewSearchCriteria()).Iterator()
	require.False(t, it.Next(context.Background()))
	require.Error(t, it.Err())
	require.Contains(t, it.Err().Error(), "search criteria too broad")
}

func TestSearch_CriteriaBoundToRequestBody(t *testing.T) {
	mock := newPagedMock(searchPages())
	d := newTestDisputes(&mock.mockTransport)

	c := NewSearchCriteria()
	c.Text("id").Is("d1")
	c.Range("amount").Between("1.00", "5.00")
	c.Multiple("status").In("open", "disputed")

	it := d.Search(c).Iterator()
	require.True(t, it.Next(context.Background()))

	req, ok := mock.bodies[0].(searchRequest)
	require.True(t, ok)
	require.Equal(t, map[string]string{"is": "d1"}, req.Search["id"])
	require.Equal(t, map[string]string{"min": "1.00", "max": "5.00"}, req.Search["amount"])
	require.Equal(t, []string{"open", "disputed"}, req.Search["status"])
}

func TestEach_StopsOnCallbackError(t *testing.T) {
	mock := newPagedMock(searchPages())
	d := newTestDisputes(&mock.mockTransport)

	stop := fmt.Errorf("enough")
	var seen int
	err := d.Search(NewSearchCriteria()).Each(context.Background(), func(*Dispute) error {
		seen++
		if seen == 3 {
			return stop
		}
		return nil
	})
	require.Same(t, stop, err)
	require.Equal(t, 3, seen)
}
