package mood

// Verse is a Quran passage chosen for a mood band.
type Verse struct {
	Arabic    string
	English   string
	Malay     string
	Reference string
	ThemeEN   string
	ThemeBM   string
}

var (
	verseHigh = Verse{
		Arabic:    "وَإِذْ تَأَذَّنَ رَبُّكُمْ لَئِن شَكَرْتُمْ لَأَزِيدَنَّكُمْ وَلَئِن كَفَرْتُمْ إِنَّ عَذَابِي لَشَدِيدٌ",
		English:   "And remember when your Lord proclaimed: 'If you are grateful, I will certainly give you more. But if you are ungrateful, surely My punishment is severe.'",
		Malay:     "Dan ingatlah ketika Tuhanmu memaklumkan: 'Sesungguhnya jika kamu bersyukur, nescaya Aku akan menambah nikmat kepadamu, tetapi jika kamu kufur, sesungguhnya azab-Ku sangat pedih.'",
		Reference: "Surah Ibrahim (14:7)",
		ThemeEN:   "Gratitude multiplies blessings",
		ThemeBM:   "Syukur melipatgandakan nikmat",
	}
	verseMid = Verse{
		Arabic:    "إِنَّ الَّذِينَ قَالُوا رَبُّنَا اللَّهُ ثُمَّ اسْتَقَامُوا تَتَنَزَّلُ عَلَيْهِمُ الْمَلَائِكَةُ أَلَّا تَخَافُوا وَلَا تَحْزَنُوا وَأَبْشِرُوا بِالْجَنَّةِ الَّتِي كُنتُمْ تُوعَدُونَ",
		English:   "Indeed, those who say 'Our Lord is Allah' and then remain steadfast, the angels descend upon them saying: 'Do not fear, and do not grieve. Receive the glad tidings of Paradise which you have been promised.'",
		Malay:     "Sesungguhnya orang-orang yang berkata 'Tuhan kami ialah Allah', kemudian mereka istiqamah, para malaikat turun kepada mereka berkata: 'Janganlah kamu takut dan janganlah kamu bersedih, dan bergembiralah dengan syurga yang dijanjikan kepada kamu.'",
		Reference: "Surah Fussilat (41:30)",
		ThemeEN:   "Stay steadfast, peace awaits",
		ThemeBM:   "Teruskan istiqamah, ketenangan menanti",
	}
	verseLow = Verse{
		Arabic:    "فَإِنَّ مَعَ الْعُسْرِ يُسْرًا ۝ إِنَّ مَعَ الْعُسْرِ يُسْرًا",
		English:   "Indeed, with hardship comes ease. Indeed, with hardship comes ease.",
		Malay:     "Sesungguhnya bersama kesulitan itu ada kemudahan. Sesungguhnya bersama kesulitan itu ada kemudahan.",
		Reference: "Surah al-Inshirah (94:5-6)",
		ThemeEN:   "After every hardship comes ease",
		ThemeBM:   "Selepas setiap kesulitan ada kemudahan",
	}
)

// VerseFor picks the verse for a weekly average: high at 4 and above,
// low at 2 and below, mid otherwise.
func VerseFor(avg float64) Verse {
	switch {
	case avg >= 4:
		return verseHigh
	case avg <= 2:
		return verseLow
	}
	return verseMid
}
