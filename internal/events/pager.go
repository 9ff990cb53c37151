package events

import "github.com/aldrik-cruze/historical-news/internal/model"

const PageSize = 12

// Pager reveals a growing prefix of a filtered list. The cursor starts at
// one page and advances only while results remain hidden, so repeated
// load-more signals at the end of the list are no-ops. A query change means
// a fresh Pager (or Reset): pagination state is derived, never carried over.
type Pager struct {
	pageSize int
	cursor   int
}

func NewPager() *Pager {
	return &Pager{pageSize: PageSize, cursor: PageSize}
}

func (p *Pager) Visible(full []model.EventRecord) []model.EventRecord {
	if p.cursor >= len(full) {
		return full
	}
	return full[:p.cursor]
}

func (p *Pager) Advance(total int) {
	if p.cursor >= total {
		return
	}
	p.cursor += p.pageSize
	if p.cursor > total {
		p.cursor = total
	}
}

func (p *Pager) Reset() {
	p.cursor = p.pageSize
}

func (p *Pager) Cursor() int {
	return p.cursor
}
