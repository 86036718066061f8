package email

import (
	"context"

	"github.com/gosnews/gosnews/internal/lib/i18n"
)

// WelcomeData is rendered by the welcome template.
type WelcomeData struct {
	Lang    string
	Subject string
	Heading string
	Body    string
	Footer  string
	SiteURL string
}

var welcomeCopy = map[string]WelcomeData{
	i18n.Uzbek: {
		Subject: "Yangiliklarga obuna bo'ldingiz",
		Heading: "Obunangiz uchun rahmat!",
		Body:    "Endi siz hududimizdagi eng so'nggi yangiliklar va qo'llanmalarni birinchilardan bo'lib olasiz.",
		Footer:  "Agar bu xatni kutmagan bo'lsangiz, uni e'tiborsiz qoldiring.",
	},
	i18n.Russian: {
		Subject: "Вы подписались на новости",
		Heading: "Спасибо за подписку!",
		Body:    "Теперь вы первыми будете получать свежие новости и руководства нашего региона.",
		Footer:  "Если вы не ожидали это письмо, просто проигнорируйте его.",
	},
	i18n.Karakalpak: {
		Subject: "Jańalıqlarǵa jazıldıńız",
		Heading: "Jazılǵanıńız ushın raxmet!",
		Body:    "Endi siz aymaǵımızdıń eń sońǵı jańalıqları hám qollanbaların birinshilerden bolıp alasız.",
		Footer:  "Eger bul xattı kútpegen bolsańız, onı itibarsız qaldırıń.",
	},
}

// WelcomeContent returns the welcome copy for lang, falling back to the
// default language.
func WelcomeContent(lang, siteURL string) WelcomeData {
	data, ok := welcomeCopy[lang]
	if !ok {
		lang = i18n.Default()
		data = welcomeCopy[lang]
	}
	data.Lang = lang
	data.SiteURL = siteURL
	return data
}

// SendWelcomeEmail greets a new subscriber in their language.
func (c *Client) SendWelcomeEmail(ctx context.Context, to, lang string) error {
	data := WelcomeContent(lang, c.siteURL)
	return c.SendEmail(ctx, to, data.Subject, TemplateWelcome, data)
}
