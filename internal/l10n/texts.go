package l10n

// Key identifies a localized text.
type Key string

// Keys of all localized texts
const (
	ConfirmAlertConfirm              Key = "settings.confirm-alert.action.confirm"
	ConfirmAlertLater                Key = "settings.confirm-alert.action.later"
	ConfirmAlertMessage              Key = "settings.confirm-alert.message"
	ConfirmAlertTitle                Key = "settings.confirm-alert.title"
	FAQDoneButton                    Key = "settings.faq.done-button"
	FAQLoadError                     Key = "settings.faq.load-error"
	FAQTitle                         Key = "settings.faq.title"
	FeedbackButtonTitle              Key = "settings.feedback-button.title"
	FeedbackButtonTooltip            Key = "settings.feedback-button.tooltip"
	FeedbackMailError                Key = "settings.feedback.mail-error"
	FeedbackSubject                  Key = "settings.feedback.subject"
	FAQButtonTitle                   Key = "settings.faq-button.title"
	FAQButtonTooltip                 Key = "settings.faq-button.tooltip"
	AppSectionTitle                  Key = "settings.app-section.title"
	InterfaceLanguageHint            Key = "settings.app-section.interface-language.hint"
	InterfaceLanguageTitle           Key = "settings.app-section.interface-language.title"
	PrayerSectionTitle               Key = "settings.prayer-section.title"
	RakatCountHint                   Key = "settings.prayer-section.rakat-count.hint"
	RakatCountTitle                  Key = "settings.prayer-section.rakat-count.title"
	FixedTextsHint                   Key = "settings.prayer-section.fixed-texts.hint"
	FixedTextsTitle                  Key = "settings.prayer-section.fixed-texts.title"
	ChangingTextHint                 Key = "settings.prayer-section.changing-text.hint"
	ChangingTextTitle                Key = "settings.prayer-section.changing-text.title"
	ChangingTextNameHint             Key = "settings.prayer-section.changing-text-name.hint"
	ChangingTextNameTitle            Key = "settings.prayer-section.changing-text-name.title"
	MovementSoundInstrumentHint      Key = "settings.prayer-section.movement-sound-instrument.hint"
	MovementSoundInstrumentTitle     Key = "settings.prayer-section.movement-sound-instrument.title"
	PrayerSummaryTitle               Key = "prayer.summary.title"
	SettingsTitle                    Key = "settings.title"
	StartButtonTitle                 Key = "settings.start-button.title"
	SpeedFactorValue                 Key = "settings.speed-factor.value"
	ShowChangingTextNameValueOn      Key = "settings.changing-text-name.on"
	ShowChangingTextNameValueOff     Key = "settings.changing-text-name.off"
	MovementSoundInstrumentValueNone Key = "settings.movement-sound-instrument.none"
)

// translations maps keys to their texts by language code.
var translations = map[Key]map[string]string{
	AppSectionTitle: {
		"en": "App",
		"de": "App",
		"tr": "Uygulama",
	},
	ChangingTextHint: {
		"en": "Speech speed of the changing Quran part",
		"de": "Sprechgeschwindigkeit des wechselnden Koranteils",
		"tr": "Değişen Kuran bölümünün okuma hızı",
	},
	ChangingTextNameHint: {
		"en": "Announce the name of the recited sura",
		"de": "Namen der rezitierten Sure ansagen",
		"tr": "Okunan surenin adını söyle",
	},
	ChangingTextNameTitle: {
		"en": "Changing text name",
		"de": "Name des Wechseltexts",
		"tr": "Değişen metnin adı",
	},
	ChangingTextTitle: {
		"en": "Changing text",
		"de": "Wechseltext",
		"tr": "Değişen metin",
	},
	ConfirmAlertConfirm: {
		"en": "Restart now",
		"de": "Jetzt neu starten",
		"tr": "Şimdi yeniden başlat",
	},
	ConfirmAlertLater: {
		"en": "Later",
		"de": "Später",
		"tr": "Daha sonra",
	},
	ConfirmAlertMessage: {
		"en": "The new language is applied after a restart. Restart now?",
		"de": "Die neue Sprache wird nach einem Neustart angewendet. Jetzt neu starten?",
		"tr": "Yeni dil yeniden başlatmadan sonra uygulanır. Şimdi yeniden başlatılsın mı?",
	},
	ConfirmAlertTitle: {
		"en": "Restart required",
		"de": "Neustart erforderlich",
		"tr": "Yeniden başlatma gerekli",
	},
	FAQButtonTitle: {
		"en": "FAQ",
		"de": "FAQ",
		"tr": "SSS",
	},
	FAQButtonTooltip: {
		"en": "Frequently asked questions",
		"de": "Häufig gestellte Fragen",
		"tr": "Sıkça sorulan sorular",
	},
	FAQDoneButton: {
		"en": "Done",
		"de": "Fertig",
		"tr": "Tamam",
	},
	FAQLoadError: {
		"en": "Failed to load the FAQ",
		"de": "FAQ konnten nicht geladen werden",
		"tr": "SSS yüklenemedi",
	},
	FAQTitle: {
		"en": "FAQ",
		"de": "FAQ",
		"tr": "SSS",
	},
	FeedbackButtonTitle: {
		"en": "Feedback",
		"de": "Feedback",
		"tr": "Geri bildirim",
	},
	FeedbackButtonTooltip: {
		"en": "Send feedback by mail",
		"de": "Feedback per Mail senden",
		"tr": "E-posta ile geri bildirim gönder",
	},
	FeedbackMailError: {
		"en": "Failed to open mail",
		"de": "E-Mail konnte nicht geöffnet werden",
		"tr": "E-posta açılamadı",
	},
	FeedbackSubject: {
		"en": "Feedback on Prayer %s",
		"de": "Feedback zu Prayer %s",
		"tr": "Prayer %s hakkında geri bildirim",
	},
	FixedTextsHint: {
		"en": "Speech speed of the texts recited in every prayer",
		"de": "Sprechgeschwindigkeit der Texte, die in jedem Gebet rezitiert werden",
		"tr": "Her namazda okunan metinlerin okuma hızı",
	},
	FixedTextsTitle: {
		"en": "Fixed texts",
		"de": "Feste Texte",
		"tr": "Sabit metinler",
	},
	InterfaceLanguageHint: {
		"en": "Requires a restart",
		"de": "Erfordert einen Neustart",
		"tr": "Yeniden başlatma gerektirir",
	},
	InterfaceLanguageTitle: {
		"en": "Interface language",
		"de": "Sprache der Oberfläche",
		"tr": "Arayüz dili",
	},
	MovementSoundInstrumentHint: {
		"en": "Sound played when the next movement begins",
		"de": "Klang, der zu Beginn der nächsten Bewegung gespielt wird",
		"tr": "Bir sonraki hareket başladığında çalınan ses",
	},
	MovementSoundInstrumentTitle: {
		"en": "Movement sound",
		"de": "Bewegungsklang",
		"tr": "Hareket sesi",
	},
	MovementSoundInstrumentValueNone: {
		"en": "None",
		"de": "Keiner",
		"tr": "Yok",
	},
	PrayerSectionTitle: {
		"en": "Prayer",
		"de": "Gebet",
		"tr": "Namaz",
	},
	PrayerSummaryTitle: {
		"en": "Prayer",
		"de": "Gebet",
		"tr": "Namaz",
	},
	RakatCountHint: {
		"en": "Number of rakat to pray",
		"de": "Anzahl der zu betenden Rakat",
		"tr": "Kılınacak rekat sayısı",
	},
	RakatCountTitle: {
		"en": "Rakat",
		"de": "Rakat",
		"tr": "Rekat",
	},
	SettingsTitle: {
		"en": "Settings",
		"de": "Einstellungen",
		"tr": "Ayarlar",
	},
	ShowChangingTextNameValueOff: {
		"en": "Hidden",
		"de": "Ausgeblendet",
		"tr": "Gizli",
	},
	ShowChangingTextNameValueOn: {
		"en": "Shown",
		"de": "Angezeigt",
		"tr": "Gösteriliyor",
	},
	SpeedFactorValue: {
		"en": "%s×",
		"de": "%s×",
		"tr": "%s×",
	},
	StartButtonTitle: {
		"en": "Start prayer",
		"de": "Gebet starten",
		"tr": "Namazı başlat",
	},
}
