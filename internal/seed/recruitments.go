// Package seed holds the placeholder content the stores load when nothing
// better is available: the discovery deck postings, the scout inbox and the
// opening messages of a scout conversation. Every call returns fresh values
// with new identities.
package seed

import "github.com/dmitrijs2005/percify/internal/models"

func posting(company, logo, title, industry, kind, pay1, pay2, deadline, classification, image, location string, tags ...string) models.Recruitment {
	return models.NewRecruitment(models.Recruitment{
		CompanyName:    company,
		CompanyLogo:    logo,
		BadgeText:      "Percify特別選考",
		Title:          title,
		IndustryLabel:  "Industry",
		Industry:       industry,
		TypeLabel:      "Type",
		EmploymentType: kind,
		Pay1Label:      "Pay1",
		Pay1:           pay1,
		Pay2Label:      "Pay2",
		Pay2:           pay2,
		Tags:           tags,
		Deadline:       deadline,
		Classification: classification,
		HeaderImageURL: image,
		Location:       location,
	})
}

// Recruitments returns the initial discovery deck. The last posting is the
// top of the deck.
func Recruitments() []models.Recruitment {
	return []models.Recruitment{
		posting("Walt Disney Imagineering", "Disney",
			"WDIであなたの夢を世界中の人へ届けるために働いてみませんか",
			"ホスピタリティ", "総合職", "990万円", "1270万円", "あと29日", "本選考",
			"https://i.pinimg.com/736x/7d/69/dc/7d69dc920959151e3825479f6c92b113.jpg", "Tokyo",
			"#海外勤務あり", "#外資系企業", "#英語必須"),
		posting("Citi Group", "Citi",
			"Citiグループで国際コンシューマーファイナンスに挑戦しよう",
			"金融", "総合職", "550万円", "2240万円", "あと66日", "本選考",
			"https://www.bigdropinc.com/wp-content/uploads/2018/11/Citi-1920x1080.jpg", "Tokyo",
			"#国際展開", "#外資系企業", "#海外勤務あり"),
		posting("MHIエアロスペースシステムズ", "Mitsubishi",
			"MHIエアロスペースシステムズで宇宙工学の最先端へ挑戦する",
			"メーカー", "総合職", "390万円", "1100万円", "あと23日", "本選考",
			"https://www.mhi.com/jp/group/masc/sites/g/files/jwhtju1961/files/styles/original_image/public/2024-08/space03.png", "Tokyo",
			"#国内首位企業", "#海外勤務あり", "#選べる勤務地"),
		posting("アクセンチュア・ジャパン株式会社", "Accenture",
			"アクセンチュアで学生向けアプリの開発に携わろう",
			"コンサルティング", "インターンシップ", "420万円", "1220万円", "あと2日", "インターン",
			"https://www.evolution-design.info/var/site/storage/images/evolution-design/image-galleries/about/news/accenture-office-on-silhstrasse-1/24561-1-eng-GB/accenture-office-on-silhstrasse-1_i1920.jpg", "Tokyo",
			"#人気企業", "#コンサルティング", "#IT企業"),
		posting("JPMorgan Chase", "JPMorgan",
			"JPMorgan Chaseのトレーディング部門で世界を舞台に活躍しませんか",
			"金融", "新卒正社員", "550万円", "2280万円", "あと22日", "本選考",
			"https://arquitecturaviva.com/assets/uploads/obras/53847/av_218475.webp", "New York Global Headquarters",
			"#海外勤務あり", "#世界を舞台に活躍", "#外資系企業"),
		posting("株式会社オリエンタルランド", "OLC",
			"新卒採用 - 株式会社オリエンタルランドで共に夢を紡ぐキャリア (IT・デジタルマネジメント)",
			"サービス", "総合職", "320万円", "1540万円", "あと13日", "本選考",
			"https://world-of-disney.com/wp-content/uploads/2025/07/IMG_202306_063Pcrs.jpg", "出社",
			"#海外勤務あり", "#福利厚生充実", "#Percify特別選考"),
		posting("伊藤忠株式会社", "Itochu",
			"伊藤忠株式会社の新規事業開拓チームでオセアニア鉄鉱石事業に携わる",
			"総合商社", "総合職", "320万円", "1540万円", "あと92日", "本選考",
			"https://www.itclogi.com/application/files/3817/4347/9132/image-crosstalk-01.jpg", "出社",
			"#海外勤務あり", "#福利厚生充実", "#Percify特別選考"),
	}
}
