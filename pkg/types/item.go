package types

// 物品ID常量
// 收获作物使用 SeedType.String() 作为物品ID
const (
	ItemWood   = "wood"
	ItemApple  = "apple"
	ItemCorn   = "corn"
	ItemTomato = "tomato"
)

// AllItems 库存中可出售的物品（显示顺序）
var AllItems = []string{ItemWood, ItemApple, ItemCorn, ItemTomato}
