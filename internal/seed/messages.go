package seed

import (
	"time"

	"github.com/dmitrijs2005/percify/internal/models"
)

const scoutIntro = `松本 様

突然のご連絡を差し上げますこと、失礼いたします。
伊藤忠商事株式会社 航空機リース事業部の□□と申します。

この度、当社における将来的な人材採用に向けて、航空機関連ビジネス・アセットファイナンス領域における高度な専門性・ポテンシャルをお持ちの方を幅広くリサーチさせていただいております。
その中で、松本様のご経歴・ご関心領域を拝見し、当部門において求めております将来のグローバル人材像に極めて高い親和性があると判断し、ご挨拶を兼ねてご連絡させていただいた次第です。`

const scoutInvitation = `もちろん、現時点で正式な選考への参加をお願いするものではなく、あくまでも当社事業およびキャリアパスのご紹介が目的でございます。もしご関心をお持ちいただけましたら、
・事業概要のご説明
・キャリア形成の方向性
・若手社員の業務内容
などをお伝えするオンライン形式でのカジュアルミーティングを設定させていただければ幸いです。

何卒よろしくお願い申し上げます。

伊藤忠商事株式会社
人事部　採用係`

// ScoutMessages returns the two recruiter messages that open the scout
// conversation, timestamped an hour before now.
func ScoutMessages(now time.Time) []models.ChatMessage {
	return []models.ChatMessage{
		models.NewChatMessage(scoutIntro, false, now.Add(-3600*time.Second)),
		models.NewChatMessage(scoutInvitation, false, now.Add(-3500*time.Second)),
	}
}
