package domain

// Static code tables from the public registry's field documentation. Loaded
// once at init, read-only afterwards. Unknown codes fall through to the raw
// value at the lookup site, never to an error.

// regionCodes lists every zcode the registry publishes; the collector walks
// exactly this set.
var regionCodes = []string{
	"11", "26", "27", "28", "29", "30", "31", "36",
	"41", "43", "44", "46", "47", "48", "50", "51", "52",
}

// RegionCodes returns the registry's administrative region codes in
// collection order.
func RegionCodes() []string {
	out := make([]string, len(regionCodes))
	copy(out, regionCodes)
	return out
}

var regionNames = map[string]string{
	"11": "서울특별시", "26": "부산광역시", "27": "대구광역시", "28": "인천광역시",
	"29": "광주광역시", "30": "대전광역시", "31": "울산광역시", "36": "세종특별자치시",
	"41": "경기도", "43": "충청북도", "44": "충청남도", "46": "전라남도",
	"47": "경상북도", "48": "경상남도", "50": "제주특별자치도", "51": "강원특별자치도",
	"52": "전북특별자치도",
}

// capitalAreaCodes and metroCityCodes drive the three-way region bucket.
// Everything else is 지방.
var (
	capitalAreaCodes = map[string]bool{"11": true, "28": true, "41": true}
	metroCityCodes   = map[string]bool{"26": true, "27": true, "29": true, "30": true, "31": true}
)

// slowChargerTypes are always 완속 regardless of rated output.
// outputCheckedTypes are nominally fast hardware, but 30kW units sold under
// these type codes are billed as slow; the check is a literal string match on
// "30" (see classifySpeed).
var (
	slowChargerTypes   = map[string]bool{"02": true, "07": true, "08": true}
	outputCheckedTypes = map[string]bool{
		"01": true, "03": true, "04": true, "05": true,
		"06": true, "09": true, "10": true,
	}
)

// operatorNames maps busiId codes to display names. A few entries override
// the registry's published names at the business side's request (LU, ME, SG).
var operatorNames = map[string]string{
	"AC": "아우토크립트", "AE": "한국자동차환경협회", "AH": "아하", "AL": "아론",
	"AM": "아마노코리아", "AP": "애플망고", "BA": "부안군", "BE": "브라이트에너지파트너스",
	"BG": "비긴스", "BK": "비케이에너지", "BN": "블루네트웍스", "BP": "차밥스",
	"BS": "보스시큐리티", "BT": "보타리에너지", "CA": "씨에스테크놀로지", "CB": "참빛이브이씨",
	"CC": "코콤", "CG": "서울씨엔지", "CH": "채움모빌리티", "CI": "쿨사인",
	"CN": "에바씨엔피", "CO": "한전케이디엔", "CP": "캐스트프로", "CR": "크로커스",
	"CS": "한국EV충전서비스센터", "CT": "씨티카", "CU": "씨어스", "CV": "채비",
	"DC": "대성물류건설", "DE": "대구공공시설관리공단", "DG": "대구시", "DL": "딜라이브",
	"DO": "대한송유관공사", "DP": "대유플러스", "DR": "두루스코이브이", "DS": "대선",
	"DY": "동양이엔피", "E0": "에너지플러스", "EA": "에바", "EB": "일렉트리",
	"EC": "이지차저", "EE": "이마트", "EG": "에너지파트너즈", "EH": "이앤에이치에너지",
	"EK": "이노케이텍", "EL": "엔라이튼", "EM": "evmost", "EN": "이엔",
	"EO": "E1", "EP": "이카플러그", "ER": "이엘일렉트릭", "ES": "이테스",
	"ET": "이씨티", "EV": "에버온", "EX": "이모션플레이스", "EZ": "차지인",
	"FE": "에프이씨", "FT": "포티투닷", "G1": "광주시", "G2": "광주시",
	"GD": "그린도트", "GE": "그린전력", "GG": "강진군", "GN": "지에스커넥트",
	"GO": "유한회사 골드에너지", "GP": "군포시", "GR": "그리드위즈", "GS": "GS칼텍스",
	"HB": "에이치엘비생명과학", "HD": "현대자동차", "HE": "한국전기차충전서비스", "HJ": "한진",
	"HL": "에이치엘비일렉", "HM": "휴맥스이브이", "HP": "해피차지", "HR": "한국홈충전",
	"HS": "홈앤서비스", "HU": "한솔엠에스", "HW": "한화솔루션", "HY": "현대엔지니어링",
	"IC": "인천국제공항공사", "IK": "익산시", "IM": "아이마켓코리아", "IN": "신세계아이앤씨",
	"IO": "아이온커뮤니케이션즈", "IV": "인큐버스", "JA": "이브이시스", "JC": "제주에너지공사",
	"JD": "제주특별자치도", "JE": "제주전기자동차서비스", "JH": "종하아이앤씨", "JJ": "전주시",
	"JN": "제이앤씨플랜", "JT": "제주테크노파크", "JU": "정읍시", "KA": "기아자동차",
	"KC": "한국컴퓨터", "KE": "한국전기차인프라기술", "KG": "KH에너지", "KH": "김해시",
	"KI": "기아자동차", "KJ": "순천시", "KL": "클린일렉스", "KM": "카카오모빌리티",
	"KN": "한국환경공단", "KO": "이브이파트너스", "KP": "한국전력", "KR": "이브이씨코리아",
	"KS": "한국전기차솔루션", "KT": "KT", "KU": "한국충전연합", "L3": "엘쓰리일렉트릭파워",
	"LA": "에스이랩", "LC": "롯데건설", "LD": "롯데이노베이트", "LH": "LG유플러스 볼트업(플러그인)",
	"LI": "엘에스이링크", "LT": "광성계측기", "LU": "LG유플러스", "MA": "맥플러스",
	"ME": "환경부", "MI": "모니트", "MO": "매니지온", "MR": "미래씨앤엘",
	"MS": "미래에스디", "MT": "모던텍", "MV": "메가볼트", "NB": "엔비플러스",
	"NE": "에너넷", "NH": "농협경제지주 신재생에너지센터", "NJ": "나주시", "NN": "이브이네스트",
	"NS": "뉴텍솔루션", "NT": "NICE인프라", "NX": "넥씽", "OB": "현대오일뱅크",
	"OS": "온스테이션", "PA": "이브이페이", "PC": "아이파킹", "PE": "피앤이시스템즈",
	"PI": "GS차지비", "PK": "펌프킨", "PL": "플러그링크", "PM": "피라인모터스",
	"PS": "이브이파킹서비스", "PW": "파워큐브", "RE": "레드이엔지", "RS": "리셀파워",
	"S1": "이브이에스이피", "SA": "설악에너텍", "SB": "소프트베리", "SC": "삼척시",
	"SD": "스칼라데이터", "SE": "서울시", "SF": "스타코프", "SG": "시그넷",
	"SH": "에스에이치에너지", "SJ": "세종시", "SK": "SK에너지", "SL": "에스에스기전",
	"SM": "성민기업", "SN": "서울에너지공사", "SO": "선광시스템", "SP": "스마트포트테크놀로지",
	"SR": "SK렌터카", "SS": "투이스이브이씨", "ST": "SK일렉링크", "SU": "순천시 체육시설관리소",
	"SZ": "SG생활안전", "TB": "태백시청", "TD": "타디스테크놀로지", "TE": "테슬라",
	"TH": "태현교통", "TL": "티엘컴퍼니", "TM": "티맵", "TR": "한마음장애인복지회",
	"TS": "태성콘텍", "TU": "티비유", "TV": "아이토브", "UN": "유니이브이",
	"UP": "유플러스아이티", "US": "울산시", "VT": "볼타", "WB": "이브이루씨",
	"WJ": "우진산전", "YC": "노란충전", "YY": "양양군", "ZE": "이브이모드코리아",
	"ZP": "자몽파워",
}

// kindNames maps the 충전소 구분 (facility kind) code.
var kindNames = map[string]string{
	"A0": "공공시설", "B0": "주차시설", "C0": "휴게시설", "D0": "관광시설", "E0": "상업시설",
	"F0": "차량정비시설", "G0": "기타시설", "H0": "공동주택시설", "I0": "근린생활시설", "J0": "교육문화시설",
}

// kindDetailNames maps the 충전소 구분 상세 code.
var kindDetailNames = map[string]string{
	"A001": "관공서", "A002": "주민센터", "A003": "공공기관", "A004": "지자체시설",
	"B001": "공영주차장", "B002": "공원주차장", "B003": "환승주차장", "B004": "일반주차장",
	"C001": "고속도로 휴게소", "C002": "지방도로 휴게소", "C003": "쉼터",
	"D001": "공원", "D002": "전시관", "D003": "민속마을", "D004": "생태공원",
	"D005": "홍보관", "D006": "관광안내소", "D007": "관광지", "D008": "박물관", "D009": "유적지",
	"E001": "마트(쇼핑몰)", "E002": "백화점", "E003": "숙박시설", "E004": "골프장(CC)",
	"E005": "카페", "E006": "음식점", "E007": "주유소", "E008": "영화관",
	"F001": "서비스센터", "F002": "정비소",
	"G001": "군부대", "G002": "야영장", "G003": "공중전화부스", "G004": "기타",
	"G005": "오피스텔", "G006": "단독주택",
	"H001": "아파트", "H002": "빌라", "H003": "사업장(사옥)", "H004": "기숙사", "H005": "연립주택",
	"I001": "병원", "I002": "종교시설", "I003": "보건소", "I004": "경찰서",
	"I005": "도서관", "I006": "복지관", "I007": "수련원", "I008": "금융기관",
	"J001": "학교", "J002": "교육원", "J003": "학원", "J004": "공연장",
	"J005": "관람장", "J006": "동식물원", "J007": "경기장",
}
