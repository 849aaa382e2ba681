package sheet

import "fmt"

// ReservedSheetID is the id of the built-in tips sheet. The sheet is
// regenerated from ReservedTemplate on every load, so edits and
// deletions under this id never survive a reload.
const ReservedSheetID = "useful-tips"

// ReservedTemplate returns the full text of the built-in tips sheet.
func ReservedTemplate() string {
	return `Useful Tips
    Git
        > git status # Show working tree status
        > git stash # Shelve local changes
        > git log --oneline -20 # Recent history, compact
        Commit early, commit often
    Shell
        > grep -rn TODO . # Find leftover TODOs
        > du -sh * # Folder sizes in the current directory
        The first line of a sheet is its name
    Sheets
        Indent headers by four spaces
        Indent entries by eight spaces
        Start an entry with > to make it a command
        Append " #" and text for a description
`
}

// NewSheetTemplate returns starter text for a freshly created sheet,
// demonstrating the format with one header, one command and one note.
func NewSheetTemplate(name string) string {
	return fmt.Sprintf(`%s
    Example Header
        > echo hello # An example command
        An example note
`, name)
}
