package event

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-hypr/hyprwire"
)

// fields consumes the comma-separated payload of one event record, one token
// per call. The first failure sticks: later calls return zero values and
// [fields.Err] reports the original error, so a half-decoded record can
// never be mistaken for a valid one.
type fields struct {
	toks []string
	err  error
}

// Fields have no escaping on this protocol; a comma inside a window title
// splits it, which is a wire limitation, not ours.
func newFields(payload string) *fields {
	return &fields{toks: strings.Split(payload, ",")}
}

func (f *fields) next() (string, bool) {
	if f.err != nil {
		return "", false
	}
	if len(f.toks) == 0 {
		f.err = ErrorUnexpectedEOF
		return "", false
	}
	tok := f.toks[0]
	f.toks = f.toks[1:]
	return tok, true
}

func (f *fields) nextString() string {
	tok, _ := f.next()
	return tok
}

func (f *fields) nextWorkspaceId() hyprwire.WorkspaceId {
	tok, ok := f.next()
	if !ok {
		return 0
	}
	id, err := strconv.ParseInt(tok, 16, 32)
	if err != nil {
		f.err = fmt.Errorf("%w: workspace id %q", ErrorInvalidInteger, tok)
		return 0
	}
	return hyprwire.WorkspaceId(id)
}

// nextAddress parses a bare hexadecimal token. A "0x" prefix is rejected:
// the event channel never sends one, only JSON responses do.
func (f *fields) nextAddress() hyprwire.WindowAddress {
	tok, ok := f.next()
	if !ok {
		return 0
	}
	addr, err := strconv.ParseUint(tok, 16, 64)
	if err != nil {
		f.err = fmt.Errorf("%w: window address %q", ErrorInvalidInteger, tok)
		return 0
	}
	return hyprwire.WindowAddress(addr)
}

// nextOptionalAddress is [fields.nextAddress] with an empty token meaning no
// window.
func (f *fields) nextOptionalAddress() *hyprwire.WindowAddress {
	tok, ok := f.next()
	if !ok || tok == "" {
		return nil
	}
	addr, err := strconv.ParseUint(tok, 16, 64)
	if err != nil {
		f.err = fmt.Errorf("%w: window address %q", ErrorInvalidInteger, tok)
		return nil
	}
	a := hyprwire.WindowAddress(addr)
	return &a
}

func (f *fields) nextBool() bool {
	tok, ok := f.next()
	if !ok {
		return false
	}
	b, err := strconv.ParseBool(tok)
	if err != nil {
		f.err = fmt.Errorf("%w: %q", ErrorInvalidBoolean, tok)
		return false
	}
	return b
}

// remainingAddresses consumes every token left. Grouped window handles come
// decimal encoded, unlike every other address on this channel.
func (f *fields) remainingAddresses() []hyprwire.WindowAddress {
	if f.err != nil {
		return nil
	}
	addrs := make([]hyprwire.WindowAddress, 0, len(f.toks))
	for _, tok := range f.toks {
		addr, err := strconv.ParseUint(tok, 10, 64)
		if err != nil {
			f.err = fmt.Errorf("%w: window address %q", ErrorInvalidInteger, tok)
			return nil
		}
		addrs = append(addrs, hyprwire.WindowAddress(addr))
	}
	f.toks = nil
	return addrs
}

func (f *fields) Err() error {
	return f.err
}
