package pickers

import "strings"

// ControlSet идентификаторы элементов, присутствующих на странице
type ControlSet map[string]struct{}

// NewControlSet создает набор из списка идентификаторов, пустые игнорируются
func NewControlSet(ids ...string) ControlSet {
	set := make(ControlSet, len(ids))
	for _, id := range ids {
		if id = strings.TrimSpace(id); id != "" {
			set[id] = struct{}{}
		}
	}
	return set
}

// Has сообщает, есть ли элемент на странице
func (s ControlSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}
