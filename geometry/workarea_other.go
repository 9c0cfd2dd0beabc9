//go:build !windows

package geometry

func WorkArea() (Rect, error) {
	return Rect{}, ErrUnsupported
}
