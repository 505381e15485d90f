// parse.go implements argument parsing shared by the date commands.
//
// Separated because every date command starts the same way: turning
// positional CLI strings into integers with a role-named error message.
//
// Design: parsing is the only fallible step in these commands. The
// validators themselves are total over integers, so once parsing
// succeeds the command cannot fail, only report an invalid verdict.

package date

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrNotAnInteger is returned when a positional argument is not an integer.
var ErrNotAnInteger = errors.New("not an integer")

// parseInt converts a positional argument to an int, naming the role the
// argument plays in the error message.
func parseInt(role, arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q", ErrNotAnInteger, role, arg)
	}
	return n, nil
}

// parseInts converts positional arguments to ints using parallel role names.
func parseInts(roles []string, args []string) ([]int, error) {
	ns := make([]int, len(args))
	for i, arg := range args {
		n, err := parseInt(roles[i], arg)
		if err != nil {
			return nil, err
		}
		ns[i] = n
	}
	return ns, nil
}
