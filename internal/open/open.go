package open

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
)

// EditorCommand builds the command that opens filePath in the user's
// $EDITOR, positioned at lineNum where the editor supports it. Falls
// back to less when $EDITOR is unset.
func EditorCommand(filePath string, lineNum int) *exec.Cmd {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "less"
	}

	switch {
	case strings.Contains(editor, "vim") || strings.Contains(editor, "nvim"):
		return exec.Command(editor, fmt.Sprintf("+%d", lineNum), filePath)
	case strings.Contains(editor, "code"):
		return exec.Command(editor, "--goto", filePath+":"+strconv.Itoa(lineNum))
	case strings.Contains(editor, "less"):
		return exec.Command(editor, "+"+strconv.Itoa(lineNum), filePath)
	default:
		return exec.Command(editor, filePath)
	}
}
