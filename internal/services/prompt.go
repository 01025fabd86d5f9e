package services

import "fmt"

// Prompt templates embed the normalized query, a Scryfall syntax reference
// and worked slang examples, and instruct the model to answer with the bare
// query only.

const zhPromptTemplate = `你是一个万智牌专家，请将用户的中文描述转换为Scryfall搜索语法。

用户输入：%s

请返回有效的Scryfall搜索语法，格式要求：
1. 只返回搜索语法，不要其他解释
2. 使用标准的Scryfall语法

Scryfall搜索语法参考：
- 颜色：c:g(绿) c:u(蓝) c:r(红) c:b(黑) c:w(白) c:rg(红绿) c:uw(白蓝)
- 卡牌类型：t:creature(生物) t:instant(瞬间) t:sorcery(法术) t:artifact(神器) t:enchantment(结界) t:planeswalker(鹏洛客) t:land(地)
- 卡牌文字：o:"关键词" (搜索卡牌文字中的关键词)
- 法力值：cmc<=3 (法力值小于等于3) cmc>=5 (法力值大于等于5)
- 力量/防御力：pow>=4 (力量大于等于4) tou<=2 (防御力小于等于2)
- 稀有度：r:rare(稀有) r:mythic(神话) r:common(普通)
- 组合条件：使用 AND 或空格连接多个条件
- 或条件：使用 OR 连接多个选择

示例：
- "地落卡组的强力终端" → o:"landfall" t:creature (o:"win" OR o:"end the game")
- "绿色的生物卡" → t:creature c:g
- "费用在3点以下的瞬间" → t:instant cmc<=3
- "力量大于4的红色生物" → t:creature c:r pow>=4
- "神器结界卡" → (t:artifact OR t:enchantment)
- "地落或进场触发" → (o:"landfall" OR o:"enters the battlefield")`

const enPromptTemplate = `You are a Magic: The Gathering expert. Convert the user's description to Scryfall search syntax.

User input: %s

Return only the valid Scryfall search syntax without any explanation.

Scryfall Search Syntax Reference:
- Colors: c:g(green) c:u(blue) c:r(red) c:b(black) c:w(white) c:rg(red-green) c:uw(white-blue)
- Card Types: t:creature t:instant t:sorcery t:artifact t:enchantment t:planeswalker t:land
- Oracle Text: o:"keyword" (search for text in card rules)
- Mana Value: cmc<=3 (mana value 3 or less) cmc>=5 (mana value 5 or more)
- Power/Toughness: pow>=4 (power 4 or more) tou<=2 (toughness 2 or less)
- Rarity: r:rare r:mythic r:common
- Combine conditions: Use AND or space to connect multiple conditions
- OR conditions: Use OR to connect multiple choices

Examples:
- "landfall finisher" → o:"landfall" t:creature (o:"win" OR o:"end the game")
- "green creatures" → t:creature c:g
- "instant spells under 3 mana" → t:instant cmc<=3
- "red creatures with power 4+" → t:creature c:r pow>=4
- "artifacts or enchantments" → (t:artifact OR t:enchantment)
- "landfall or ETB triggers" → (o:"landfall" OR o:"enters the battlefield")`

// BuildPrompt selects the language-specific template and embeds the
// normalized query.
func BuildPrompt(query, language string) string {
	if language == "zh" {
		return fmt.Sprintf(zhPromptTemplate, query)
	}
	return fmt.Sprintf(enPromptTemplate, query)
}
