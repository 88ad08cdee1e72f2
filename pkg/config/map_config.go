package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// 地图图层名称
const (
	LayerNameGround         = "Ground"
	LayerNameHouseFloor     = "HouseFloor"
	LayerNameHouseFurniture = "HouseFurnitureBottom"
	LayerNameHouseWalls     = "HouseWalls"
	LayerNameWater          = "Water"
	LayerNameCollision      = "Collision"
	LayerNameFence          = "Fence"
	LayerNameFarmable       = "Farmable"

	ObjectLayerDecoration = "Decoration"
	ObjectLayerTrees      = "Trees"
	ObjectLayerPlayer     = "Player"
)

// 玩家对象层中的标记名
const (
	MarkerStart  = "Start"
	MarkerBed    = "Bed"
	MarkerTrader = "Trader"
)

// EmptyTile 瓦片层中表示空格的字符
const EmptyTile = '.'

// TilePlacement 瓦片层中的一个非空格子
type TilePlacement struct {
	Col, Row int
	Visual   rune
}

// ObjectPlacement 对象层中的一个对象
// X/Y 为对象左上角的世界坐标
type ObjectPlacement struct {
	Name       string            `yaml:"name"`
	X          float64           `yaml:"x"`
	Y          float64           `yaml:"y"`
	Width      float64           `yaml:"width"`
	Height     float64           `yaml:"height"`
	Properties map[string]string `yaml:"properties"`
}

// LayoutSource 世界布局数据源
//
// 世界构建时只读取一次：瓦片层按行优先顺序返回非空格子，
// 对象层返回全部对象。图层不存在时 ok 为 false。
type LayoutSource interface {
	Size() (cols, rows int)
	CellSize() float64
	TileLayer(name string) (tiles []TilePlacement, ok bool)
	ObjectLayer(name string) (objects []ObjectPlacement, ok bool)
}

// MapConfig YAML 格式的农场地图
//
// 配置文件位置: data/maps/farm.yaml
//
// 瓦片层的每一行是一个字符串，每个字符对应一个格子，'.' 表示空。
type MapConfig struct {
	Width        int           `yaml:"width"`
	Height       int           `yaml:"height"`
	TileSize     float64       `yaml:"tileSize"`
	TileLayers   []TileLayer   `yaml:"tileLayers"`
	ObjectLayers []ObjectLayer `yaml:"objectLayers"`
}

// TileLayer 瓦片层
type TileLayer struct {
	Name string   `yaml:"name"`
	Rows []string `yaml:"rows"`
}

// ObjectLayer 对象层
type ObjectLayer struct {
	Name    string            `yaml:"name"`
	Objects []ObjectPlacement `yaml:"objects"`
}

// LoadMapConfig 从文件加载地图
func LoadMapConfig(path string) (*MapConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read map %s: %w", path, err)
	}
	return ParseMapConfig(data)
}

// ParseMapConfig 解析 YAML 格式的地图
func ParseMapConfig(data []byte) (*MapConfig, error) {
	var m MapConfig
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse map: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("invalid map: %w", err)
	}
	return &m, nil
}

// Validate 验证地图数据
// 每个瓦片层的行数和每行的字符数必须与地图尺寸一致
func (m *MapConfig) Validate() error {
	if m.Width <= 0 || m.Height <= 0 {
		return fmt.Errorf("map size must be positive, got %dx%d", m.Width, m.Height)
	}
	if m.TileSize <= 0 {
		return fmt.Errorf("tileSize must be positive, got %.1f", m.TileSize)
	}

	seen := make(map[string]bool)
	for _, layer := range m.TileLayers {
		if layer.Name == "" {
			return fmt.Errorf("tile layer without name")
		}
		if seen[layer.Name] {
			return fmt.Errorf("duplicate layer %q", layer.Name)
		}
		seen[layer.Name] = true

		if len(layer.Rows) != m.Height {
			return fmt.Errorf("tile layer %q has %d rows, expected %d", layer.Name, len(layer.Rows), m.Height)
		}
		for i, row := range layer.Rows {
			if n := len([]rune(row)); n != m.Width {
				return fmt.Errorf("tile layer %q row %d has %d columns, expected %d", layer.Name, i, n, m.Width)
			}
		}
	}

	for _, layer := range m.ObjectLayers {
		if layer.Name == "" {
			return fmt.Errorf("object layer without name")
		}
		if seen[layer.Name] {
			return fmt.Errorf("duplicate layer %q", layer.Name)
		}
		seen[layer.Name] = true

		for i, obj := range layer.Objects {
			if obj.Name == "" {
				return fmt.Errorf("object layer %q object %d has no name", layer.Name, i)
			}
			if obj.Width < 0 || obj.Height < 0 {
				return fmt.Errorf("object layer %q object %q has negative size", layer.Name, obj.Name)
			}
		}
	}
	return nil
}

// Size 返回地图的格子尺寸
func (m *MapConfig) Size() (int, int) {
	return m.Width, m.Height
}

// CellSize 返回格子边长（像素）
func (m *MapConfig) CellSize() float64 {
	return m.TileSize
}

// TileLayer 返回瓦片层的全部非空格子（行优先）
func (m *MapConfig) TileLayer(name string) ([]TilePlacement, bool) {
	for _, layer := range m.TileLayers {
		if layer.Name != name {
			continue
		}
		var tiles []TilePlacement
		for row, line := range layer.Rows {
			for col, r := range []rune(line) {
				if r == EmptyTile {
					continue
				}
				tiles = append(tiles, TilePlacement{Col: col, Row: row, Visual: r})
			}
		}
		return tiles, true
	}
	return nil, false
}

// ObjectLayer 返回对象层的全部对象
func (m *MapConfig) ObjectLayer(name string) ([]ObjectPlacement, bool) {
	for _, layer := range m.ObjectLayers {
		if layer.Name == name {
			return layer.Objects, true
		}
	}
	return nil, false
}

// FindObject 在对象层中按名称查找第一个对象
func FindObject(src LayoutSource, layer, name string) (ObjectPlacement, bool) {
	objects, ok := src.ObjectLayer(layer)
	if !ok {
		return ObjectPlacement{}, false
	}
	for _, obj := range objects {
		if obj.Name == name {
			return obj, true
		}
	}
	return ObjectPlacement{}, false
}
