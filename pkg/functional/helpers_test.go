package functional

import (
	"reflect"
	"testing"
)

func TestSlicesItemsMatch(t *testing.T) {
	tt := []struct {
		a, b []string
		want bool
	}{
		{[]string{"a", "b"}, []string{"b", "a"}, true},
		{[]string{"a", "b"}, []string{"a"}, false},
		{[]string{"a"}, []string{"b"}, false},
		{[]string{}, []string{}, true},
	}
	for i, tc := range tt {
		if got := SlicesItemsMatch(tc.a, tc.b); got != tc.want {
			t.Errorf("Case %d: Expected %v, got %v", i, tc.want, got)
		}
	}
}

func TestSet(t *testing.T) {
	set := NewSet[string]()
	set.Add("a")
	set.Add("a")
	set.Add("b")
	if !set.Contains("a") || !set.Contains("b") {
		t.Errorf("Expected set to contain added items")
	}
	if set.Contains("c") {
		t.Errorf("Expected set not to contain c")
	}
	if len(set) != 2 {
		t.Errorf("Expected 2 items, got %d", len(set))
	}
}

func TestMap(t *testing.T) {
	got := Map([]int{1, 2, 3}, func(i int) int { return i * 2 })
	if !reflect.DeepEqual(got, []int{2, 4, 6}) {
		t.Errorf("Expected [2 4 6], got %v", got)
	}
}

func TestFiltered(t *testing.T) {
	got := Filtered([]int{1, 2, 3, 4}, func(i int) bool { return i%2 == 0 })
	if !reflect.DeepEqual(got, []int{2, 4}) {
		t.Errorf("Expected [2 4], got %v", got)
	}
}

func TestRemoveDuplicates(t *testing.T) {
	got := RemoveDuplicates([]string{"a", "b", "a", "c", "b"})
	if !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Errorf("Expected first occurrences kept in order, got %v", got)
	}
}

