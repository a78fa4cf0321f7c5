package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/bodgit/zone7/board"
)

var (
	errOverflow = errors.New("mask does not fit in 49 bits")
	errPartial  = errors.New("incomplete zone, black, white triple")
)

// parseMask accepts decimal, 0x hexadecimal, 0o octal or 0b binary
func parseMask(s string) (uint64, error) {
	m, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid mask %q: %w", s, err)
	}
	if m > board.Mask {
		return 0, fmt.Errorf("%q: %w", s, errOverflow)
	}
	return m, nil
}

type positionBuilder struct {
	masks [3]uint64
	n     int
}

func (pb *positionBuilder) add(s string) (board.Position, bool, error) {
	m, err := parseMask(s)
	if err != nil {
		return board.Position{}, false, err
	}

	pb.masks[pb.n] = m
	if pb.n++; pb.n < len(pb.masks) {
		return board.Position{}, false, nil
	}
	pb.n = 0

	return board.Position{Zone: pb.masks[0], Black: pb.masks[1], White: pb.masks[2]}, true, nil
}

func (pb *positionBuilder) finish() error {
	if pb.n != 0 {
		return errPartial
	}
	return nil
}

// scanPositions calls fn for each triple of whitespace-separated masks
// read from r
func scanPositions(r io.Reader, fn func(board.Position) error) error {
	s := bufio.NewScanner(r)
	s.Split(bufio.ScanWords)

	var pb positionBuilder
	for s.Scan() {
		p, ok, err := pb.add(s.Text())
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		if err := fn(p); err != nil {
			return err
		}
	}
	if err := s.Err(); err != nil {
		return err
	}

	return pb.finish()
}

// parsePositions converts a list of arguments into positions
func parsePositions(args []string) ([]board.Position, error) {
	var pb positionBuilder
	var positions []board.Position
	for _, a := range args {
		p, ok, err := pb.add(a)
		if err != nil {
			return nil, err
		}
		if ok {
			positions = append(positions, p)
		}
	}

	if err := pb.finish(); err != nil {
		return nil, err
	}

	return positions, nil
}
