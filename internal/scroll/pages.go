package scroll

// pageList is the ordered page sequence. Index in the slice is the page number.
type pageList struct {
	items []Page
}

func (l *pageList) len() int {
	return len(l.items)
}

func (l *pageList) at(i int) Page {
	return l.items[i]
}

func (l *pageList) indexOf(p Page) int {
	for i, item := range l.items {
		if item == p {
			return i
		}
	}
	return -1
}

func (l *pageList) contains(p Page) bool {
	return l.indexOf(p) >= 0
}

func (l *pageList) first() Page {
	if len(l.items) == 0 {
		return nil
	}
	return l.items[0]
}

func (l *pageList) last() Page {
	if len(l.items) == 0 {
		return nil
	}
	return l.items[len(l.items)-1]
}

func (l *pageList) add(p Page) {
	l.items = append(l.items, p)
}

// insert places p at index, clamping index into [0, len]
func (l *pageList) insert(p Page, index int) {
	if index < 0 {
		index = 0
	}
	if index > len(l.items) {
		index = len(l.items)
	}
	l.items = append(l.items, nil)
	copy(l.items[index+1:], l.items[index:])
	l.items[index] = p
}

func (l *pageList) remove(p Page) bool {
	i := l.indexOf(p)
	if i < 0 {
		return false
	}
	l.removeAt(i)
	return true
}

func (l *pageList) removeAt(i int) Page {
	p := l.items[i]
	copy(l.items[i:], l.items[i+1:])
	l.items[len(l.items)-1] = nil
	l.items = l.items[:len(l.items)-1]
	return p
}

// snapshot returns a copy safe for callers to keep
func (l *pageList) snapshot() []Page {
	out := make([]Page, len(l.items))
	copy(out, l.items)
	return out
}
