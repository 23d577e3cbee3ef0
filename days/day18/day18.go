// Package day18 measures the surface of a lava droplet scanned as 1x1x1
// voxels. Part 1 counts every face not shared with another voxel, part 2
// counts only faces reachable from outside, found by flooding the padded
// bounding box with air and tallying the lava faces the flood touches.
package day18

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/advent2022/scan"
)

type voxel struct {
	x, y, z int
}

func (v voxel) add(o voxel) voxel {
	return voxel{v.x + o.x, v.y + o.y, v.z + o.z}
}

var faceDeltas = [6]voxel{
	{1, 0, 0}, {-1, 0, 0},
	{0, 1, 0}, {0, -1, 0},
	{0, 0, 1}, {0, 0, -1},
}

func parseVoxel(line string) (voxel, error) {
	parts := strings.Split(line, ",")
	if len(parts) != 3 {
		return voxel{}, fmt.Errorf("day18: want three coordinates, got %d", len(parts))
	}

	var out [3]int
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return voxel{}, fmt.Errorf("day18: invalid coordinate: %w", err)
		}
		out[i] = v
	}

	return voxel{out[0], out[1], out[2]}, nil
}

func parseDroplet(r io.Reader) (map[voxel]struct{}, error) {
	voxels, err := scan.Items(r, parseVoxel)
	if err != nil {
		return nil, err
	}
	if len(voxels) == 0 {
		return nil, errors.New("day18: no voxels scanned")
	}

	droplet := make(map[voxel]struct{}, len(voxels))
	for _, v := range voxels {
		droplet[v] = struct{}{}
	}

	return droplet, nil
}

// Part1 counts all faces not covered by a neighboring voxel, interior air
// pockets included.
func Part1(r io.Reader) (int, error) {
	droplet, err := parseDroplet(r)
	if err != nil {
		return 0, err
	}

	faces := 0
	for v := range droplet {
		for _, d := range faceDeltas {
			if _, covered := droplet[v.add(d)]; !covered {
				faces++
			}
		}
	}

	return faces, nil
}

// Part2 counts only the exterior surface. Air floods the bounding box
// padded by one cell in every direction, so it wraps around the droplet
// but never enters trapped pockets; each lava face the flood touches is
// counted exactly once, from its air side.
func Part2(r io.Reader) (int, error) {
	droplet, err := parseDroplet(r)
	if err != nil {
		return 0, err
	}

	var lo, hi voxel
	first := true
	for v := range droplet {
		if first {
			lo, hi = v, v
			first = false
			continue
		}
		lo = voxel{min(lo.x, v.x), min(lo.y, v.y), min(lo.z, v.z)}
		hi = voxel{max(hi.x, v.x), max(hi.y, v.y), max(hi.z, v.z)}
	}
	lo = lo.add(voxel{-1, -1, -1})
	hi = hi.add(voxel{1, 1, 1})
	within := func(v voxel) bool {
		return v.x >= lo.x && v.x <= hi.x &&
			v.y >= lo.y && v.y <= hi.y &&
			v.z >= lo.z && v.z <= hi.z
	}

	faces := 0
	stack := []voxel{lo}
	seen := map[voxel]struct{}{lo: {}}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, d := range faceDeltas {
			n := cur.add(d)
			if !within(n) {
				continue
			}
			if _, lava := droplet[n]; lava {
				faces++
				continue
			}
			if _, ok := seen[n]; ok {
				continue
			}
			seen[n] = struct{}{}
			stack = append(stack, n)
		}
	}

	return faces, nil
}
