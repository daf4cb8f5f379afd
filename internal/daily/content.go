package daily

import "time"

// Hadith is one narration from the built-in collection.
type Hadith struct {
	Topic    string
	English  string
	Malay    string
	Narrator string
	Source   string
}

// Dua is one supplication from the built-in collection.
type Dua struct {
	Title           string
	Transliteration string
	English         string
	Malay           string
	Source          string
}

var hadith = []Hadith{
	{
		Topic:    "intention",
		English:  "Actions are judged only by intentions, and every person will have only what they intended.",
		Malay:    "Sesungguhnya setiap amalan itu bergantung kepada niat, dan setiap orang akan mendapat apa yang diniatkannya.",
		Narrator: "Umar ibn al-Khattab",
		Source:   "Sahih al-Bukhari 1, Sahih Muslim 1907",
	},
	{
		Topic:    "brotherhood",
		English:  "None of you truly believes until he loves for his brother what he loves for himself.",
		Malay:    "Tidak sempurna iman seseorang daripada kamu sehingga dia mengasihi saudaranya sebagaimana dia mengasihi dirinya sendiri.",
		Narrator: "Anas ibn Malik",
		Source:   "Sahih al-Bukhari 13, Sahih Muslim 45",
	},
	{
		Topic:    "speech",
		English:  "Whoever believes in Allah and the Last Day, let him speak good or remain silent.",
		Malay:    "Sesiapa yang beriman kepada Allah dan hari akhirat, hendaklah dia berkata baik atau diam.",
		Narrator: "Abu Hurairah",
		Source:   "Sahih al-Bukhari 6018, Sahih Muslim 47",
	},
	{
		Topic:    "anger",
		English:  "The strong one is not the one who overcomes others by strength, but the one who controls himself when angry.",
		Malay:    "Orang yang kuat bukanlah yang menang bergusti, tetapi orang yang kuat ialah yang dapat menguasai dirinya ketika marah.",
		Narrator: "Abu Hurairah",
		Source:   "Sahih al-Bukhari 6114, Sahih Muslim 2609",
	},
	{
		Topic:    "ease",
		English:  "Make things easy and do not make them difficult. Give glad tidings and do not drive people away.",
		Malay:    "Permudahkanlah dan jangan menyusahkan. Berilah khabar gembira dan jangan menjauhkan orang.",
		Narrator: "Anas ibn Malik",
		Source:   "Sahih al-Bukhari 69",
	},
	{
		Topic:    "consistency",
		English:  "The most beloved deeds to Allah are those done consistently, even if they are small.",
		Malay:    "Amalan yang paling dicintai Allah ialah yang berterusan walaupun sedikit.",
		Narrator: "Aisyah",
		Source:   "Sahih al-Bukhari 6464, Sahih Muslim 783",
	},
	{
		Topic:    "patience",
		English:  "How wonderful is the affair of the believer, for all of it is good. If good befalls him he is grateful, and if harm befalls him he is patient, and that is good for him.",
		Malay:    "Sungguh menakjubkan urusan orang mukmin, semua urusannya baik. Jika dia mendapat kesenangan dia bersyukur, dan jika ditimpa kesusahan dia bersabar, maka itu baik baginya.",
		Narrator: "Suhaib ar-Rumi",
		Source:   "Sahih Muslim 2999",
	},
	{
		Topic:    "kindness",
		English:  "Your smile in the face of your brother is charity.",
		Malay:    "Senyumanmu di hadapan saudaramu adalah sedekah.",
		Narrator: "Abu Dzar al-Ghifari",
		Source:   "Jami' at-Tirmidhi 1956",
	},
	{
		Topic:    "sincerity",
		English:  "Allah does not look at your appearance or your wealth, but He looks at your hearts and your deeds.",
		Malay:    "Sesungguhnya Allah tidak melihat kepada rupa dan harta kamu, tetapi Dia melihat kepada hati dan amalan kamu.",
		Narrator: "Abu Hurairah",
		Source:   "Sahih Muslim 2564",
	},
	{
		Topic:    "this world",
		English:  "Be in this world as though you were a stranger or a traveller.",
		Malay:    "Jadilah kamu di dunia ini seperti orang asing atau seorang pengembara.",
		Narrator: "Abdullah ibn Umar",
		Source:   "Sahih al-Bukhari 6416",
	},
	{
		Topic:    "hardship",
		English:  "No fatigue, illness, worry, grief, harm or distress befalls a Muslim, not even a thorn that pricks him, except that Allah expiates some of his sins by it.",
		Malay:    "Tidaklah seorang Muslim ditimpa keletihan, penyakit, kerisauan, kesedihan, gangguan atau kesusahan, hingga duri yang menusuknya, melainkan Allah menghapuskan dengannya sebahagian dosa-dosanya.",
		Narrator: "Abu Sa'id al-Khudri and Abu Hurairah",
		Source:   "Sahih al-Bukhari 5641, Sahih Muslim 2573",
	},
	{
		Topic:    "character",
		English:  "Fear Allah wherever you are. Follow a bad deed with a good one and it will wipe it out, and treat people with good character.",
		Malay:    "Bertakwalah kepada Allah di mana sahaja kamu berada. Iringilah kejahatan dengan kebaikan nescaya ia menghapuskannya, dan bergaullah dengan manusia dengan akhlak yang baik.",
		Narrator: "Abu Dzar al-Ghifari",
		Source:   "Jami' at-Tirmidhi 1987",
	},
	{
		Topic:    "contentment",
		English:  "Richness is not having many possessions. True richness is the richness of the soul.",
		Malay:    "Kekayaan bukanlah dengan banyaknya harta, tetapi kekayaan yang sebenar ialah kekayaan jiwa.",
		Narrator: "Abu Hurairah",
		Source:   "Sahih al-Bukhari 6446, Sahih Muslim 1051",
	},
	{
		Topic:    "gratitude",
		English:  "Whoever does not thank people has not thanked Allah.",
		Malay:    "Sesiapa yang tidak berterima kasih kepada manusia, dia tidak bersyukur kepada Allah.",
		Narrator: "Abu Hurairah",
		Source:   "Sunan Abi Dawud 4811, Jami' at-Tirmidhi 1954",
	},
	{
		Topic:    "family",
		English:  "The best of you are those who are best to their families, and I am the best of you to my family.",
		Malay:    "Sebaik-baik kamu ialah yang paling baik terhadap keluarganya, dan aku adalah yang paling baik terhadap keluargaku.",
		Narrator: "Aisyah",
		Source:   "Jami' at-Tirmidhi 3895",
	},
	{
		Topic:    "knowledge",
		English:  "Whoever takes a path seeking knowledge, Allah makes easy for him a path to Paradise.",
		Malay:    "Sesiapa yang menempuh jalan untuk menuntut ilmu, Allah akan memudahkan baginya jalan ke syurga.",
		Narrator: "Abu Hurairah",
		Source:   "Sahih Muslim 2699",
	},
	{
		Topic:    "purity",
		English:  "Purity is half of faith.",
		Malay:    "Kebersihan itu sebahagian daripada iman.",
		Narrator: "Abu Malik al-Asy'ari",
		Source:   "Sahih Muslim 223",
	},
	{
		Topic:    "doubt",
		English:  "Leave what gives you doubt for what does not give you doubt.",
		Malay:    "Tinggalkanlah apa yang meragukanmu kepada apa yang tidak meragukanmu.",
		Narrator: "Al-Hasan ibn Ali",
		Source:   "Jami' at-Tirmidhi 2518, Sunan an-Nasa'i 5711",
	},
	{
		Topic:    "focus",
		English:  "Part of the excellence of a person's Islam is leaving what does not concern him.",
		Malay:    "Antara tanda baiknya Islam seseorang ialah meninggalkan perkara yang tidak berkaitan dengannya.",
		Narrator: "Abu Hurairah",
		Source:   "Jami' at-Tirmidhi 2317",
	},
	{
		Topic:    "anger",
		English:  "A man asked the Prophet for advice. He said: Do not become angry. The man repeated his request several times, and each time he said: Do not become angry.",
		Malay:    "Seorang lelaki meminta nasihat daripada Nabi. Baginda bersabda: Jangan marah. Lelaki itu mengulanginya beberapa kali, dan baginda tetap bersabda: Jangan marah.",
		Narrator: "Abu Hurairah",
		Source:   "Sahih al-Bukhari 6116",
	},
	{
		Topic:    "mercy",
		English:  "The merciful are shown mercy by the Most Merciful. Be merciful to those on earth, and the One above the heavens will be merciful to you.",
		Malay:    "Orang yang penyayang akan disayangi oleh Yang Maha Penyayang. Sayangilah makhluk di bumi, nescaya kamu akan disayangi oleh yang di langit.",
		Narrator: "Abdullah ibn Amr",
		Source:   "Sunan Abi Dawud 4941, Jami' at-Tirmidhi 1924",
	},
	{
		Topic:    "time",
		English:  "Take advantage of five before five: your youth before your old age, your health before your sickness, your wealth before your poverty, your free time before you are busy, and your life before your death.",
		Malay:    "Rebutlah lima perkara sebelum lima perkara: masa mudamu sebelum tuamu, sihatmu sebelum sakitmu, kayamu sebelum miskinmu, lapangmu sebelum sibukmu, dan hidupmu sebelum matimu.",
		Narrator: "Abdullah ibn Abbas",
		Source:   "Al-Mustadrak al-Hakim 7846",
	},
	{
		Topic:    "wisdom",
		English:  "A believer is not stung from the same hole twice.",
		Malay:    "Seorang mukmin tidak akan dipatuk dari lubang yang sama dua kali.",
		Narrator: "Abu Hurairah",
		Source:   "Sahih al-Bukhari 6133, Sahih Muslim 2998",
	},
	{
		Topic:    "charity",
		English:  "Charity does not decrease wealth, Allah increases a servant in honour when he forgives, and no one humbles himself for Allah except that Allah raises him.",
		Malay:    "Sedekah tidak mengurangkan harta. Allah menambah kemuliaan hamba yang memaafkan, dan tidaklah seseorang merendah diri kerana Allah melainkan Allah mengangkat darjatnya.",
		Narrator: "Abu Hurairah",
		Source:   "Sahih Muslim 2588",
	},
	{
		Topic:    "hope",
		English:  "Allah says: I am as My servant thinks of Me, and I am with him when he remembers Me.",
		Malay:    "Allah berfirman: Aku mengikut sangkaan hamba-Ku terhadap-Ku, dan Aku bersamanya ketika dia mengingati-Ku.",
		Narrator: "Abu Hurairah",
		Source:   "Sahih al-Bukhari 7405, Sahih Muslim 2675",
	},
	{
		Topic:    "sincerity",
		English:  "The religion is sincere counsel.",
		Malay:    "Agama itu adalah nasihat.",
		Narrator: "Tamim ad-Dari",
		Source:   "Sahih Muslim 55",
	},
	{
		Topic:    "trust",
		English:  "If you relied on Allah as He truly deserves, He would provide for you as He provides for the birds. They go out hungry in the morning and return full in the evening.",
		Malay:    "Jika kamu bertawakal kepada Allah dengan sebenar-benar tawakal, nescaya Dia memberi rezeki kepadamu sebagaimana Dia memberi rezeki kepada burung. Ia keluar pada waktu pagi dalam keadaan lapar dan pulang pada waktu petang dalam keadaan kenyang.",
		Narrator: "Umar ibn al-Khattab",
		Source:   "Jami' at-Tirmidhi 2344",
	},
	{
		Topic:    "gentleness",
		English:  "Allah is gentle and loves gentleness in all matters.",
		Malay:    "Sesungguhnya Allah Maha Lembut dan menyukai kelembutan dalam semua urusan.",
		Narrator: "Aisyah",
		Source:   "Sahih al-Bukhari 6927, Sahih Muslim 2165",
	},
	{
		Topic:    "character",
		English:  "The most complete of the believers in faith are those with the best character.",
		Malay:    "Orang mukmin yang paling sempurna imannya ialah yang paling baik akhlaknya.",
		Narrator: "Abu Hurairah",
		Source:   "Sunan Abi Dawud 4682, Jami' at-Tirmidhi 1162",
	},
	{
		Topic:    "helping others",
		English:  "Whoever relieves a believer of a hardship of this world, Allah will relieve him of a hardship on the Day of Resurrection.",
		Malay:    "Sesiapa yang melepaskan seorang mukmin daripada satu kesusahan dunia, Allah akan melepaskannya daripada satu kesusahan pada hari kiamat.",
		Narrator: "Abu Hurairah",
		Source:   "Sahih Muslim 2699",
	},
}

var duas = []Dua{
	{
		Title:           "Good in both worlds",
		Transliteration: "Rabbana atina fid-dunya hasanah, wa fil-akhirati hasanah, wa qina 'adhaban-nar.",
		English:         "Our Lord, give us good in this world and good in the Hereafter, and protect us from the punishment of the Fire.",
		Malay:           "Wahai Tuhan kami, berilah kami kebaikan di dunia dan kebaikan di akhirat, dan peliharalah kami daripada azab neraka.",
		Source:          "Surah al-Baqarah (2:201)",
	},
	{
		Title:           "Increase in knowledge",
		Transliteration: "Rabbi zidni 'ilma.",
		English:         "My Lord, increase me in knowledge.",
		Malay:           "Wahai Tuhanku, tambahkanlah ilmu kepadaku.",
		Source:          "Surah Taha (20:114)",
	},
	{
		Title:           "Ease in affairs",
		Transliteration: "Rabbish-rah li sadri, wa yassir li amri.",
		English:         "My Lord, expand for me my chest, and ease for me my task.",
		Malay:           "Wahai Tuhanku, lapangkanlah dadaku, dan mudahkanlah urusanku.",
		Source:          "Surah Taha (20:25-26)",
	},
	{
		Title:           "Reliance on Allah",
		Transliteration: "Hasbunallahu wa ni'mal-wakil.",
		English:         "Allah is sufficient for us, and He is the best disposer of affairs.",
		Malay:           "Cukuplah Allah bagi kami, dan Dialah sebaik-baik pelindung.",
		Source:          "Surah Ali 'Imran (3:173)",
	},
	{
		Title:           "Dua of Yunus",
		Transliteration: "La ilaha illa anta, subhanaka, inni kuntu minaz-zalimin.",
		English:         "There is no god but You, glory be to You. Indeed, I have been of the wrongdoers.",
		Malay:           "Tiada Tuhan melainkan Engkau, Maha Suci Engkau. Sesungguhnya aku termasuk orang yang zalim.",
		Source:          "Surah al-Anbiya (21:87)",
	},
	{
		Title:           "Steadfast hearts",
		Transliteration: "Rabbana la tuzigh qulubana ba'da idh hadaitana, wa hab lana min ladunka rahmah, innaka antal-wahhab.",
		English:         "Our Lord, do not let our hearts deviate after You have guided us, and grant us mercy from Yourself. Indeed, You are the Bestower.",
		Malay:           "Wahai Tuhan kami, janganlah Engkau pesongkan hati kami setelah Engkau memberi petunjuk kepada kami, dan kurniakanlah kepada kami rahmat dari sisi-Mu. Sesungguhnya Engkaulah Maha Pemberi.",
		Source:          "Surah Ali 'Imran (3:8)",
	},
	{
		Title:           "Relief from anxiety",
		Transliteration: "Allahumma inni a'udhu bika minal-hammi wal-hazan, wal-'ajzi wal-kasal.",
		English:         "O Allah, I seek refuge in You from worry and grief, and from helplessness and laziness.",
		Malay:           "Ya Allah, aku berlindung kepada-Mu daripada kerisauan dan kesedihan, serta daripada kelemahan dan kemalasan.",
		Source:          "Sahih al-Bukhari 6369",
	},
	{
		Title:           "Firm faith",
		Transliteration: "Ya muqallibal-qulub, thabbit qalbi 'ala dinik.",
		English:         "O Turner of hearts, keep my heart firm upon Your religion.",
		Malay:           "Wahai Tuhan yang membolak-balikkan hati, tetapkanlah hatiku di atas agama-Mu.",
		Source:          "Jami' at-Tirmidhi 2140",
	},
	{
		Title:           "Comfort in family",
		Transliteration: "Rabbana hab lana min azwajina wa dhurriyyatina qurrata a'yun, waj'alna lil-muttaqina imama.",
		English:         "Our Lord, grant us from our spouses and offspring comfort to our eyes, and make us leaders of the righteous.",
		Malay:           "Wahai Tuhan kami, kurniakanlah kepada kami pasangan dan zuriat yang menjadi penyejuk mata, dan jadikanlah kami pemimpin bagi orang yang bertakwa.",
		Source:          "Surah al-Furqan (25:74)",
	},
	{
		Title:           "Seeking pardon",
		Transliteration: "Allahumma innaka 'afuwwun tuhibbul-'afwa fa'fu 'anni.",
		English:         "O Allah, You are Pardoning and love to pardon, so pardon me.",
		Malay:           "Ya Allah, sesungguhnya Engkau Maha Pemaaf dan suka memaafkan, maka maafkanlah aku.",
		Source:          "Jami' at-Tirmidhi 3513",
	},
	{
		Title:           "In need of good",
		Transliteration: "Rabbi inni lima anzalta ilayya min khairin faqir.",
		English:         "My Lord, I am truly in need of whatever good You send down to me.",
		Malay:           "Wahai Tuhanku, sesungguhnya aku sangat memerlukan apa jua kebaikan yang Engkau turunkan kepadaku.",
		Source:          "Surah al-Qasas (28:24)",
	},
	{
		Title:           "Forgiveness for parents",
		Transliteration: "Rabbanagh-fir li wa liwalidayya wa lil-mu'minina yawma yaqumul-hisab.",
		English:         "Our Lord, forgive me and my parents and the believers on the Day the account is established.",
		Malay:           "Wahai Tuhan kami, ampunkanlah aku, kedua ibu bapaku dan orang-orang yang beriman pada hari berlakunya hisab.",
		Source:          "Surah Ibrahim (14:41)",
	},
}

var tips = []string{
	"`sakinah journal add` to write down what is on your heart today.",
	"`sakinah journal days` to look back at your entries grouped by day.",
	"`sakinah mood log 4` to record how you feel. One log per day, update it anytime.",
	"`sakinah mood week` to see your week at a glance with a verse to match.",
	"`sakinah chat` to talk things through with your companion.",
	"`sakinah chat personas` to pick a companion voice that suits you.",
	"`sakinah prayer --live` to keep a countdown to the next prayer open.",
	"`sakinah prayer --state Johor` to check times for another state.",
	"`sakinah daily` to read today's hadith, dua and ayah together.",
	"`sakinah stats` to see your streak and how many days you have shown up.",
	"`sakinah config set user.language ms` to switch day labels to Bahasa Melayu.",
	"`sakinah journal search sabar` to find entries by word or tag.",
}

// HadithCollection returns the built-in hadith collection. It rotates yearly.
func HadithCollection() []Hadith { return hadith }

// Duas returns the built-in dua collection. It rotates monthly.
func Duas() []Dua { return duas }

// Tips returns the CLI tip pool.
func Tips() []string { return tips }

// HadithOfDay returns the hadith for t's local date.
func HadithOfDay(t time.Time) Hadith {
	h, _ := PickFor(hadith, t, Yearly)
	return h
}

// DuaOfDay returns the dua for t's local date.
func DuaOfDay(t time.Time) Dua {
	d, _ := PickFor(duas, t, Monthly)
	return d
}

// TipOfDay returns a deterministic tip for the day.
func TipOfDay(t time.Time) string {
	s, _ := PickFor(tips, t, Yearly)
	return s
}
