package seed

import "github.com/dmitrijs2005/percify/internal/models"

func chat(company, logo string, badge models.Badge, preview, timestamp string, unread bool) models.Chat {
	return models.NewChat(models.Chat{
		CompanyName:    company,
		CompanyLogo:    logo,
		Badge:          models.BadgeOf(badge),
		MessagePreview: preview,
		Timestamp:      timestamp,
		IsUnread:       unread,
		IsPriority:     badge == models.BadgePriority,
	})
}

const itochuPreview = "松本さん、ぜひ弊社の航空機リース事業部で世界を舞台に活躍しませんか？このスカウトをタップして…"

// Chats returns the initial scout inbox, priority threads first.
func Chats() []models.Chat {
	return []models.Chat{
		chat("伊藤忠商事株式会社", "Itochu", models.BadgePriority, itochuPreview, "火曜日", true),
		chat("三菱商事株式会社", "Mitsubishi", models.BadgePriority,
			"松本さん、三菱商事のエネルギー部門で新しいキャリアを始めませんか？", "月曜日", false),
		chat("丸紅株式会社", "Marubeni", models.BadgePriority,
			"海外駐在のチャンスあり！グローバルに活躍できるポジションをご用意しています", "日曜日", true),

		chat("伊藤忠商事株式会社", "Itochu", models.BadgeStandard, itochuPreview, "火曜日", true),
		chat("三井物産株式会社", "Mitsui", models.BadgeStandard, "グローバルビジネスに興味はありませんか？", "月曜日", false),
		chat("住友商事株式会社", "Sumitomo", models.BadgeStandard, "新卒採用の説明会にご招待します", "土曜日", true),
		chat("三井物産株式会社", "Mitsui", models.BadgeStandard, "グローバルビジネスに興味はありませんか？", "月曜日", false),
		chat("住友商事株式会社", "Sumitomo", models.BadgeStandard, "新卒採用の説明会にご招待します", "土曜日", true),
		chat("双日株式会社", "Sojitz", models.BadgeStandard, "インターンシップのご案内です", "金曜日", false),
		chat("双日株式会社", "Sojitz", models.BadgeStandard, "インターンシップのご案内です", "金曜日", false),
	}
}
