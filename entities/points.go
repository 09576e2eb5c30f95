package entities

import (
	"github.com/zooyer/dxf-codec/core"
)

// AssemblePoints 把按轴分开累加的坐标按到达顺序合并成点列表。
// zs 为 nil 表示二维列表，Z 取 0。
// 各轴长度不一致时截断到最短的一条，返回被丢弃的坐标个数，不做补齐。
func AssemblePoints(xs, ys, zs []float64) ([]core.Point, int) {
	n, dropped := shortest(xs, ys, zs)
	if n == 0 {
		return nil, dropped
	}
	points := make([]core.Point, n)
	for i := range points {
		points[i].X = xs[i]
		points[i].Y = ys[i]
		if zs != nil {
			points[i].Z = zs[i]
		}
	}
	return points, dropped
}

// AssembleVectors 同 AssemblePoints，结果为方向向量
func AssembleVectors(xs, ys, zs []float64) ([]core.Vector, int) {
	points, dropped := AssemblePoints(xs, ys, zs)
	if points == nil {
		return nil, dropped
	}
	vectors := make([]core.Vector, len(points))
	for i, p := range points {
		vectors[i] = core.Vector(p)
	}
	return vectors, dropped
}

func shortest(xs, ys, zs []float64) (n, dropped int) {
	n = min(len(xs), len(ys))
	total := len(xs) + len(ys)
	if zs != nil {
		n = min(n, len(zs))
		total += len(zs)
		return n, total - 3*n
	}
	return n, total - 2*n
}
