package cli

import "github.com/Makepad-fr/tada-menu/internal/todo"

func (s *Session) add() error {
	s.p.Blank()
	s.p.Prompt("Enter the item text: ")
	text, err := s.readLine()
	if err != nil {
		return err
	}
	it, err := s.list.Add(text)
	if err != nil {
		s.reject(err)
		return nil
	}
	s.p.OK("Added: " + it.Title)
	s.p.Blank()
	return nil
}

func (s *Session) show() {
	s.p.ItemList(s.list.Items())
}

// remove shows the list before asking for a number. An empty list is
// rejected without reading anything.
func (s *Session) remove() error {
	if s.list.Empty() {
		s.p.Blank()
		s.reject(todo.ErrEmptyList)
		return nil
	}
	s.show()
	s.p.Prompt("Enter the number of the item to delete: ")
	line, err := s.readLine()
	if err != nil {
		return err
	}
	n, err := todo.ParseIndex(line)
	if err != nil {
		s.reject(err)
		return nil
	}
	it, err := s.list.Remove(n)
	if err != nil {
		s.reject(err)
		return nil
	}
	s.p.OK("Deleted: " + it.Title)
	s.p.Blank()
	return nil
}
