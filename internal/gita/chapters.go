package gita

import (
	"errors"
	"strconv"
)

// ErrUnknownChapter is returned for chapter numbers outside 1..18.
var ErrUnknownChapter = errors.New("unknown chapter")

// ErrVerseOutOfRange is returned when a verse number exceeds its chapter.
var ErrVerseOutOfRange = errors.New("verse out of range")

// ErrMalformedVerseID is returned by ParseVerseID for non-numeric input.
var ErrMalformedVerseID = errors.New("chapter and verse must be numbers")

// Chapter is catalogue data for one chapter. The resolver never consults it.
type Chapter struct {
	ID               int    `json:"id"`
	Name             string `json:"name"`
	NameTranslation  string `json:"nameTranslation"`
	NameHindi        string `json:"nameHindi"`
	Description      string `json:"description"`
	DescriptionHindi string `json:"descriptionHindi"`
	Verses           int    `json:"verses"`
}

var chapters = []Chapter{
	{1, "Arjuna Visada Yoga", "The Despondency of Arjuna", "अर्जुनविषाद योग", "Arjuna's dilemma and despair before the war.", "युद्ध से पहले अर्जुन की दुविधा और निराशा।", 47},
	{2, "Sankhya Yoga", "The Yoga of Knowledge", "सांख्य योग", "The essence of the entire Gita; the nature of the soul.", "संपूर्ण गीता का सार; आत्मा का स्वरूप।", 72},
	{3, "Karma Yoga", "The Yoga of Action", "कर्म योग", "The path of selfless action (Karma Yoga).", "निस्वार्थ कर्म का मार्ग।", 43},
	{4, "Jnana Karma Sanyasa Yoga", "The Yoga of Knowledge and Renunciation of Action", "ज्ञानकर्मसंन्यास योग", "Approaching the ultimate truth via knowledge.", "ज्ञान के माध्यम से परम सत्य को जानना।", 42},
	{5, "Karma Sanyasa Yoga", "The Yoga of Renunciation", "कर्मसंन्यास योग", "Renunciation of the fruits of action.", "कर्म फलों का त्याग।", 29},
	{6, "Dhyana Yoga", "The Yoga of Meditation", "ध्यान योग", "The path of meditation and controlling the mind.", "ध्यान और मन पर नियंत्रण का मार्ग।", 47},
	{7, "Jnana Vijnana Yoga", "The Yoga of Knowledge and Wisdom", "ज्ञानविज्ञान योग", "Knowledge of the Absolute.", "परम तत्त्व का ज्ञान।", 30},
	{8, "Akshara Brahma Yoga", "The Yoga of the Imperishable Brahman", "अक्षरब्रह्म योग", "Attaining the Supreme upon death.", "मृत्यु के समय परम को प्राप्त करना।", 28},
	{9, "Raja Vidya Raja Guhya Yoga", "The Yoga of Sovereign Science and Sovereign Secret", "राजविद्याराजगुह्य योग", "The most confidential knowledge.", "सर्वाधिक गोपनीय ज्ञान।", 34},
	{10, "Vibhuti Yoga", "The Yoga of Divine Glories", "विभूति योग", "The opulence of the Absolute.", "परमेश्वर का ऐश्वर्य और महिमा।", 42},
	{11, "Visvarupa Darsana Yoga", "The Yoga of the Vision of the Universal Form", "विश्वरूपदर्शन योग", "Arjuna sees the Universal Form of Krishna.", "अर्जुन द्वारा कृष्ण के विराट रूप का दर्शन।", 55},
	{12, "Bhakti Yoga", "The Yoga of Devotion", "भक्ति योग", "The path of devotion (Bhakti).", "भक्ति का मार्ग।", 20},
	{13, "Kshetra Kshetrajna Vibhaga Yoga", "The Yoga of Distinction between the Field and the Knower", "क्षेत्र-क्षेत्रज्ञ विभाग योग", "Distinguishing matter from spirit.", "प्रकृति (शरीर) और पुरुष (आत्मा) का भेद।", 34},
	{14, "Gunatraya Vibhaga Yoga", "The Yoga of the Division of the Three Gunas", "गुणत्रयविभाग योग", "The three modes of material nature.", "प्रकृति के तीन गुणों का विभाजन।", 27},
	{15, "Purushottama Yoga", "The Yoga of the Supreme Person", "पुरुषोत्तम योग", "The ultimate truth of the Supreme Person.", "पुरुषोत्तम (परमेश्वर) का परम सत्य।", 20},
	{16, "Daivasura Sampad Vibhaga Yoga", "The Yoga of Division between Divine and Demoniacal Properties", "दैवासुरसंपद्विभाग योग", "Divine and demonic natures.", "दैवीय और आसुरी संपदा का विभाजन।", 24},
	{17, "Sraddhatraya Vibhaga Yoga", "The Yoga of the Division of Threefold Faith", "श्रद्धात्रयविभाग योग", "The three types of faith.", "तीन प्रकार की श्रद्धा का वर्णन।", 28},
	{18, "Moksha Sanyasa Yoga", "The Yoga of Liberation through Renunciation", "मोक्षसंन्यास योग", "Conclusion: The perfection of renunciation.", "निष्कर्ष: संन्यास की सिद्धि और मोक्ष।", 78},
}

// Chapters returns the catalogue in chapter order.
func Chapters() []Chapter {
	out := make([]Chapter, len(chapters))
	copy(out, chapters)
	return out
}

// ChapterByID returns the chapter numbered id.
func ChapterByID(id int) (Chapter, error) {
	if id < 1 || id > len(chapters) {
		return Chapter{}, ErrUnknownChapter
	}
	return chapters[id-1], nil
}

// Validate checks id against the catalogue.
func Validate(id VerseID) error {
	ch, err := ChapterByID(id.Chapter)
	if err != nil {
		return err
	}
	if id.Verse < 1 || id.Verse > ch.Verses {
		return ErrVerseOutOfRange
	}
	return nil
}

// ParseVerseID parses path or query values and validates them against the catalogue.
func ParseVerseID(chapter, verse string) (VerseID, error) {
	c, err := strconv.Atoi(chapter)
	if err != nil {
		return VerseID{}, ErrMalformedVerseID
	}
	v, err := strconv.Atoi(verse)
	if err != nil {
		return VerseID{}, ErrMalformedVerseID
	}
	id := VerseID{Chapter: c, Verse: v}
	if err := Validate(id); err != nil {
		return VerseID{}, err
	}
	return id, nil
}
