// If you are AI: This file holds the martial-art lookup table (id -> name, category).
// Ids are contiguous per category; names are game data and kept verbatim.

package jy3

import (
	"fmt"
)

// Category groups skills by weapon or discipline.
type Category struct {
	Name  string // Display name as shown in game
	First int    // First skill id
	Last  int    // Last skill id, inclusive
}

// Categories in id order.
var Categories = []Category{
	{Name: "暗器", First: 2, Last: 9},
	{Name: "刀法", First: 10, Last: 22},
	{Name: "棍法", First: 23, Last: 32},
	{Name: "剑法", First: 33, Last: 65},
	{Name: "掌拳", First: 66, Last: 113},
	{Name: "指法", First: 114, Last: 130},
	{Name: "内功", First: 131, Last: 169},
	{Name: "身法/轻功", First: 170, Last: 182},
}

// UnknownCategory is reported for ids outside every category.
const UnknownCategory = "未知类别"

var skillNames = map[int]string{
	2: "弹指神通", 3: "腐尸毒", 4: "基本暗器", 5: "满天星", 6: "漫天花雨", 7: "慕容暗器", 8: "掷针术", 9: "青字九打",

	10: "柴刀十八路", 11: "胡家残刀", 12: "胡家刀法", 13: "火焰刀", 14: "基本刀法", 15: "狂风刀法", 16: "慕容刀法",
	17: "奇门三才刀", 18: "燃木刀法", 19: "五虎断刀门", 20: "修罗刀法", 21: "玄虚刀法", 22: "血刀刀法",

	23: "打狗棍法", 24: "伏魔杖法", 25: "基本棍法", 26: "叫化棍法", 27: "金刚降魔杵", 28: "灵蛇杖法", 29: "慕容棍法",
	30: "太祖棍", 31: "韦陀杖法", 32: "无上大力杵法",

	33: "百变千幻云雾剑法", 34: "辟邪剑法", 35: "冰雪剑法", 36: "达摩剑法", 37: "独孤九剑", 38: "段家剑法",
	39: "夺命连环三仙剑", 40: "华山剑法", 41: "回风拂柳剑", 42: "回风落雁剑", 43: "基本剑法", 44: "金蛇剑法",
	45: "快慢十七路", 46: "狂风剑法", 47: "苗家剑法", 48: "灭绝剑法", 49: "慕容剑法", 50: "宁氏一剑", 51: "全真剑法",
	52: "绕指柔剑", 53: "神门十三剑", 54: "松风剑法", 55: "太极剑法", 56: "太岳三青峰", 57: "躺尸剑法", 58: "万花剑法",
	59: "五大夫剑", 60: "五岳剑法", 61: "玄铁剑法", 62: "玉女剑法", 63: "玉女素心剑", 64: "玉萧剑法", 65: "越女剑法",

	66: "黯然销魂掌", 67: "白虹掌", 68: "白驼雪山掌", 69: "般若掌", 70: "碧波清掌", 71: "冰蚕神掌", 72: "长拳",
	73: "长拳", 74: "长拳", 75: "长拳", 76: "赤炼神掌", 77: "抽髓掌", 78: "春蚕掌法", 79: "摧心掌", 80: "大力金刚掌",
	81: "寒冰绵掌", 82: "化骨绵掌", 83: "火焰刀", 84: "基本拳掌", 85: "降龙十八掌", 86: "金蛇游身掌", 87: "空明拳",
	88: "灵蛇拳", 89: "罗汉拳", 90: "落英神剑掌", 91: "美女拳法", 92: "美女三招", 93: "绵掌", 94: "南山掌法",
	95: "劈空掌", 96: "七伤拳", 97: "如来千叶手", 98: "三化聚顶掌", 99: "太极拳", 100: "天长掌法", 101: "天罗地网掌",
	102: "天山六阳掌", 103: "天山折梅手", 104: "铁掌", 105: "铜锤手", 106: "五罗轻烟掌", 107: "五行六合掌",
	108: "逍遥游(掌法)", 109: "须弥山掌", 110: "野狐拳法", 111: "英雄三招(拳法)", 112: "震山铁掌", 113: "重阳神掌",

	114: "参合指", 115: "大力金刚指", 116: "分筋错骨手(指法)", 117: "虎爪绝户手(指法)", 118: "基本指法",
	119: "九阴白骨爪(指法)", 120: "兰花拂穴手", 121: "六脉神剑", 122: "龙爪功", 123: "拈花指", 124: "凝血神抓",
	125: "千蛛万毒手", 126: "三阴蜈蚣爪", 127: "锁喉擒拿手", 128: "无相劫指", 129: "一阳指", 130: "鹰爪擒拿手",

	131: "八荒六合唯我独尊功", 132: "北冥真气", 133: "蛤蟆功", 134: "龟息功", 135: "化功大法", 136: "混元功",
	137: "金刚不坏神功", 138: "九阳神功", 139: "自创", 140: "葵花神功", 141: "龙象般若功(13)", 142: "乾坤大挪移(6)",
	143: "神龙心法", 144: "神照经", 145: "狮吼功", 146: "太玄经", 147: "吸星大法", 148: "小无相功", 149: "紫霞神功",
	150: "闭穴术", 151: "纯阳无极功", 152: "斗转星移", 153: "段氏心法", 154: "峨眉九阳功", 155: "华山心法",
	156: "叫化内功", 157: "逆转经脉", 158: "九阴真经心法", 159: "罗汉伏魔功", 160: "密宗内功", 161: "全真心法",
	162: "少林九阳功", 163: "太极劲", 164: "桃花岛心法", 165: "武当功", 166: "先天功", 167: "易筋经", 168: "玉女心经",
	169: "紫薇心法",

	170: "八步赶蟾", 171: "北斗仙踪", 172: "捕雀功", 173: "飞檐走壁", 174: "华山身法", 175: "金雁功", 176: "凌波微步",
	177: "少林身法", 178: "神行百变", 179: "四象步法", 180: "踏雪无痕", 181: "梯云纵", 182: "一苇渡江",
}

// IsSkill reports whether id names a known skill.
func IsSkill(id int) bool {
	_, ok := skillNames[id]
	return ok
}

// SkillName returns the name of a skill, or a placeholder for unknown ids.
func SkillName(id int) string {
	if name, ok := skillNames[id]; ok {
		return name
	}
	return fmt.Sprintf("未知武功(%d)", id)
}

// SkillCategory returns the category name of a skill id.
func SkillCategory(id int) string {
	for _, c := range Categories {
		if id >= c.First && id <= c.Last {
			return c.Name
		}
	}
	return UnknownCategory
}

// SkillsIn lists the ids of a category in id order, or nil for unknown names.
func SkillsIn(category string) []int {
	for _, c := range Categories {
		if c.Name != category {
			continue
		}
		ids := make([]int, 0, c.Last-c.First+1)
		for id := c.First; id <= c.Last; id++ {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}
