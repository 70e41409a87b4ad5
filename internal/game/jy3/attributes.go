// If you are AI: This file lists character attributes stored in the m table.

package jy3

// Attribute is an entry of the character table m, keyed by decimal id.
type Attribute struct {
	ID   int
	Name string
	Cap  int // 0 when uncapped
}

// AttributeCap is the in-game maximum of capped attributes.
const AttributeCap = 100

// Attributes in id order. Ids 16 to 37 are capped.
var Attributes = []Attribute{
	{ID: 14, Name: "名望"},
	{ID: 15, Name: "侠义"},
	{ID: 16, Name: "力道", Cap: AttributeCap},
	{ID: 17, Name: "根骨", Cap: AttributeCap},
	{ID: 18, Name: "悟性", Cap: AttributeCap},
	{ID: 19, Name: "福缘", Cap: AttributeCap},
	{ID: 20, Name: "灵敏", Cap: AttributeCap},
	{ID: 21, Name: "定力", Cap: AttributeCap},
	{ID: 22, Name: "拳掌之功", Cap: AttributeCap},
	{ID: 23, Name: "弹指之力", Cap: AttributeCap},
	{ID: 24, Name: "御剑之术", Cap: AttributeCap},
	{ID: 25, Name: "耍刀之法", Cap: AttributeCap},
	{ID: 26, Name: "舞棍之能", Cap: AttributeCap},
	{ID: 27, Name: "内功修为", Cap: AttributeCap},
	{ID: 28, Name: "拆招卸力", Cap: AttributeCap},
	{ID: 29, Name: "搏击格斗", Cap: AttributeCap},
	{ID: 30, Name: "闪躲纵跃", Cap: AttributeCap},
	{ID: 31, Name: "轻身之法", Cap: AttributeCap},
	{ID: 32, Name: "施毒之术", Cap: AttributeCap},
	{ID: 33, Name: "医疗之术", Cap: AttributeCap},
	{ID: 34, Name: "暗器技法", Cap: AttributeCap},
	{ID: 35, Name: "读书识字", Cap: AttributeCap},
	{ID: 36, Name: "交易之道", Cap: AttributeCap},
	{ID: 37, Name: "烹饪之道", Cap: AttributeCap},
}
