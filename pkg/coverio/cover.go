package coverio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/dd0wney/cluso-overlap/pkg/community"
	"github.com/dd0wney/cluso-overlap/pkg/graph"
)

func parseAssignment(fields []string) (graph.NodeID, int, error) {
	if len(fields) != 2 {
		return "", 0, ErrMalformedLine
	}
	id, err := strconv.Atoi(fields[1])
	if err != nil {
		return "", 0, fmt.Errorf("%w: community id: %v", ErrMalformedLine, err)
	}
	return graph.NodeID(fields[0]), id, nil
}

// ReadPartition parses "node community" lines where every node appears
// with exactly one community. Repeating an identical line is allowed.
func ReadPartition(r io.Reader) (community.Partition, error) {
	p := make(community.Partition)
	err := scanLines(r, func(fields []string) error {
		node, id, err := parseAssignment(fields)
		if err != nil {
			return err
		}
		if prev, ok := p[node]; ok && prev != id {
			return fmt.Errorf("%w: %s in %d and %d", ErrConflictingAssignment, node, prev, id)
		}
		p[node] = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

// ReadCover parses "node community" lines where a node may appear in several
// communities. It also returns the number of distinct nodes seen.
func ReadCover(r io.Reader) (community.Cover, int, error) {
	c := make(community.Cover)
	err := scanLines(r, func(fields []string) error {
		node, id, err := parseAssignment(fields)
		if err != nil {
			return err
		}
		set, ok := c[id]
		if !ok {
			set = make(community.NodeSet)
			c[id] = set
		}
		set.Add(node)
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	return c, len(c.Universe()), nil
}

// WriteCover writes one "node<TAB>community" line per membership, communities
// in ascending id order and members sorted.
func WriteCover(w io.Writer, c community.Cover) error {
	bw := bufio.NewWriter(w)
	for _, id := range c.IDs() {
		for _, node := range c[id].Sorted() {
			if _, err := fmt.Fprintf(bw, "%s\t%d\n", node, id); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

// WritePartition writes p in the cover format
func WritePartition(w io.Writer, p community.Partition) error {
	return WriteCover(w, p.Groups())
}

// LoadPartition reads a partition file
func LoadPartition(path string) (community.Partition, error) {
	f, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadPartition(f)
}

// LoadCover reads a cover file
func LoadCover(path string) (community.Cover, int, error) {
	f, err := Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()
	return ReadCover(f)
}

// SaveCover writes c to path
func SaveCover(path string, c community.Cover) error {
	f, err := Create(path)
	if err != nil {
		return err
	}
	if err := WriteCover(f, c); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
