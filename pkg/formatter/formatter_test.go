package formatter

import "testing"

// Smoke tests: these print to stdout; the assertions are that nothing
// panics on the common shapes.

func TestPrintSuccess(t *testing.T) {
	PrintSuccess("operation %s", "done")
}

func TestPrintError(t *testing.T) {
	PrintError("operation %s", "failed")
}

func TestPrintInfo(t *testing.T) {
	PrintInfo("plain info")
}

func TestPrintWarning(t *testing.T) {
	PrintWarning("careful with %d", 42)
}

func TestPrintTable(t *testing.T) {
	PrintTable([]string{"ID", "NAME"}, [][]string{
		{"1", "first"},
		{"2", "second"},
	})
}

func TestPrintTableEmpty(t *testing.T) {
	PrintTable([]string{"ID"}, nil)
}

func TestPrintKeyValue(t *testing.T) {
	PrintKeyValue(map[string]interface{}{
		"Name":  "tester",
		"Count": 3,
	})
}

func TestPrintObject(t *testing.T) {
	obj := struct {
		ID    string `json:"id"`
		Title string `json:"title"`
	}{"p1", "hello"}

	if err := PrintObject(obj, "post"); err != nil {
		t.Errorf("PrintObject failed: %v", err)
	}
}
