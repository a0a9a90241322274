package ferry

import "golang.org/x/exp/constraints"

// Optional values travel as a one byte presence flag followed by the value
// when the flag is set. In text the flag gets its own label, the field name
// with a trailing '?'.

// AppendOptional writes the presence flag for p and charges the value it
// points to.
func AppendOptional[T any](l *Loader, p *T) error {
	if p == nil {
		return l.AppendUint8(0)
	}
	Charge[T](l)
	return l.AppendUint8(1)
}

// ReadOptional reads a presence flag and sets *p to a fresh zero T charged
// against the arena, or to nil.
func ReadOptional[T any](l *Loader, p **T) error {
	flag, err := l.ReadUint8()
	if err != nil {
		return err
	}
	return present(l, flag, p)
}

// PrintOptional writes "name?": 1 or "name?": 0.
func PrintOptional[T any](l *Loader, name string, p *T) error {
	if err := l.PrintLabel(name + "?"); err != nil {
		return err
	}
	if p == nil {
		return l.PrintUint8(0)
	}
	Charge[T](l)
	return l.PrintUint8(1)
}

// ScanOptional is the text counterpart of ReadOptional.
func ScanOptional[T any](l *Loader, p **T) error {
	if err := l.SkipLabel(); err != nil {
		return err
	}
	flag, err := l.ScanUint8()
	if err != nil {
		return err
	}
	return present(l, flag, p)
}

func present[T any](l *Loader, flag uint8, p **T) error {
	if flag == 0 {
		*p = nil
		return nil
	}
	v, err := New[T](l)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Enums travel as 4 byte signed integers whatever their Go type.

func AppendEnum[E constraints.Integer](l *Loader, v E) error {
	return l.AppendInt32(int32(v))
}

func ReadEnum[E constraints.Integer](l *Loader) (E, error) {
	v, err := l.ReadInt32()
	return E(v), err
}

func PrintEnum[E constraints.Integer](l *Loader, v E) error {
	return l.PrintInt32(int32(v))
}

func ScanEnum[E constraints.Integer](l *Loader) (E, error) {
	v, err := l.ScanInt32()
	return E(v), err
}
