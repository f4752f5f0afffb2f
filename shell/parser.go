package shell

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	errNoData            = errors.New("no data in line")
	errWrongOptionSyntax = errors.New("wrong format; all options need arguments")
	errMalformedMove     = errors.New("error parsing arguments")
)

type shellcmd struct {
	cmd     string
	args    []string
	options map[string]string
}

// extractFields splits a line into a command, its positional args, and
// -key value options.
func extractFields(line string) (*shellcmd, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, errNoData
	}
	cmd := fields[0]
	var args []string
	options := map[string]string{}
	for i := 1; i < len(fields); i++ {
		if strings.HasPrefix(fields[i], "-") && !isNumber(fields[i]) {
			if i == len(fields)-1 {
				return nil, errWrongOptionSyntax
			}
			options[fields[i][1:]] = fields[i+1]
			i++
			continue
		}
		args = append(args, fields[i])
	}
	return &shellcmd{cmd: cmd, args: args, options: options}, nil
}

func isNumber(s string) bool {
	_, err := strconv.Atoi(s)
	return err == nil
}

// parseCoords parses a human move: exactly two non-negative integers, row
// then column.
func parseCoords(fields []string) (row, col int, err error) {
	if len(fields) != 2 {
		return 0, 0, errMalformedMove
	}
	row, err = strconv.Atoi(fields[0])
	if err != nil || row < 0 {
		return 0, 0, fmt.Errorf("%w: bad row %q", errMalformedMove, fields[0])
	}
	col, err = strconv.Atoi(fields[1])
	if err != nil || col < 0 {
		return 0, 0, fmt.Errorf("%w: bad column %q", errMalformedMove, fields[1])
	}
	return row, col, nil
}

// looksLikeMove is true when the line starts with a digit, so that typos
// in coordinates are reported as bad moves rather than unknown commands.
func looksLikeMove(cmd *shellcmd) bool {
	return cmd.cmd[0] >= '0' && cmd.cmd[0] <= '9' || cmd.cmd[0] == '-'
}
