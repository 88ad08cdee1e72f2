package utils

import "math"

// WorldToTile 将世界坐标转换为瓦片坐标
// 使用向下取整，负坐标会得到负索引（由调用方做越界判断，这里不做截断）
func WorldToTile(x, y, tileSize float64) (col, row int) {
	col = int(math.Floor(x / tileSize))
	row = int(math.Floor(y / tileSize))
	return col, row
}

// TileRect 返回瓦片在世界坐标中的矩形
func TileRect(col, row int, tileSize float64) Rect {
	return Rect{
		X: float64(col) * tileSize,
		Y: float64(row) * tileSize,
		W: tileSize,
		H: tileSize,
	}
}

// TileInBounds 判断瓦片坐标是否位于 cols x rows 网格内
func TileInBounds(col, row, cols, rows int) bool {
	return col >= 0 && col < cols && row >= 0 && row < rows
}
