package repositories

type provinceRow struct {
	code, name, shortName string
}

type districtRow struct {
	code, name string
}

var provinceRows = []provinceRow{
	{"seoul", "서울특별시", "서울"},
	{"busan", "부산광역시", "부산"},
	{"daegu", "대구광역시", "대구"},
	{"incheon", "인천광역시", "인천"},
	{"gwangju", "광주광역시", "광주"},
	{"daejeon", "대전광역시", "대전"},
	{"ulsan", "울산광역시", "울산"},
	{"sejong", "세종특별자치시", "세종"},
	{"gyeonggi", "경기도", "경기"},
	{"gangwon", "강원특별자치도", "강원"},
	{"chungbuk", "충청북도", "충북"},
	{"chungnam", "충청남도", "충남"},
	{"jeonbuk", "전라북도", "전북"},
	{"jeonnam", "전라남도", "전남"},
	{"gyeongbuk", "경상북도", "경북"},
	{"gyeongnam", "경상남도", "경남"},
	{"jeju", "제주특별자치도", "제주"},
}

// districtGroups keeps province order for catalog iteration.
// Jeju's 제주시 and 서귀포시 are administrative cities, not autonomous districts, so the province has none.
var districtGroups = []struct {
	province  string
	districts []districtRow
}{
	{"seoul", []districtRow{
		{"seoul_jung", "중구"},
		{"seoul_yongsan", "용산구"},
		{"seoul_seongdong", "성동구"},
		{"seoul_gwangjin", "광진구"},
		{"seoul_dongdaemun", "동대문구"},
		{"seoul_jungnang", "중랑구"},
		{"seoul_seongbuk", "성북구"},
		{"seoul_gangbuk", "강북구"},
		{"seoul_dobong", "도봉구"},
		{"seoul_nowon", "노원구"},
		{"seoul_eunpyeong", "은평구"},
		{"seoul_seodaemun", "서대문구"},
		{"seoul_mapo", "마포구"},
		{"seoul_yangcheon", "양천구"},
		{"seoul_gangseo", "강서구"},
		{"seoul_guro", "구로구"},
		{"seoul_geumcheon", "금천구"},
		{"seoul_yeongdeungpo", "영등포구"},
		{"seoul_dongjak", "동작구"},
		{"seoul_gwanak", "관악구"},
		{"seoul_seocho", "서초구"},
		{"seoul_gangnam", "강남구"},
		{"seoul_songpa", "송파구"},
		{"seoul_gangdong", "강동구"},
		{"seoul_jongno", "종로구"},
	}},
	{"busan", []districtRow{
		{"busan_jung", "중구"},
		{"busan_seo", "서구"},
		{"busan_dong", "동구"},
		{"busan_yeongdo", "영도구"},
		{"busan_busanjin", "부산진구"},
		{"busan_dongnae", "동래구"},
		{"busan_nam", "남구"},
		{"busan_buk", "북구"},
		{"busan_haeundae", "해운대구"},
		{"busan_saha", "사하구"},
		{"busan_geumjeong", "금정구"},
		{"busan_gangseo", "강서구"},
		{"busan_yeonje", "연제구"},
		{"busan_suyeong", "수영구"},
		{"busan_sasang", "사상구"},
		{"busan_gijang", "기장군"},
	}},
	{"gyeonggi", []districtRow{
		{"gyeonggi_suwon", "수원시"},
		{"gyeonggi_yongin", "용인시"},
		{"gyeonggi_goyang", "고양시"},
		{"gyeonggi_seongnam", "성남시"},
		{"gyeonggi_bucheon", "부천시"},
		{"gyeonggi_ansan", "안산시"},
		{"gyeonggi_anyang", "안양시"},
		{"gyeonggi_namyangju", "남양주시"},
		{"gyeonggi_hwaseong", "화성시"},
		{"gyeonggi_pyeongtaek", "평택시"},
		{"gyeonggi_uijeongbu", "의정부시"},
		{"gyeonggi_siheung", "시흥시"},
		{"gyeonggi_paju", "파주시"},
		{"gyeonggi_gimpo", "김포시"},
		{"gyeonggi_gwangmyeong", "광명시"},
		{"gyeonggi_gwangju", "광주시"},
		{"gyeonggi_gunpo", "군포시"},
		{"gyeonggi_osan", "오산시"},
		{"gyeonggi_icheon", "이천시"},
		{"gyeonggi_yangju", "양주시"},
		{"gyeonggi_anseong", "안성시"},
		{"gyeonggi_guri", "구리시"},
		{"gyeonggi_pocheon", "포천시"},
		{"gyeonggi_yangpyeong", "양평군"},
		{"gyeonggi_yeoju", "여주시"},
		{"gyeonggi_dongducheon", "동두천시"},
		{"gyeonggi_gwacheon", "과천시"},
		{"gyeonggi_gapyeong", "가평군"},
		{"gyeonggi_yeoncheon", "연천군"},
		{"gyeonggi_hanam", "하남시"},
		{"gyeonggi_uiwang", "의왕시"},
	}},
	{"gangwon", []districtRow{
		{"gangwon_chuncheon", "춘천시"},
		{"gangwon_wonju", "원주시"},
		{"gangwon_gangneung", "강릉시"},
		{"gangwon_donghae", "동해시"},
		{"gangwon_taebaek", "태백시"},
		{"gangwon_sokcho", "속초시"},
		{"gangwon_samcheok", "삼척시"},
		{"gangwon_hongcheon", "홍천군"},
		{"gangwon_hoengseong", "횡성군"},
		{"gangwon_yeongwol", "영월군"},
		{"gangwon_pyeongchang", "평창군"},
		{"gangwon_jeongseon", "정선군"},
		{"gangwon_cheorwon", "철원군"},
		{"gangwon_hwacheon", "화천군"},
		{"gangwon_yanggu", "양구군"},
		{"gangwon_inje", "인제군"},
		{"gangwon_goseong", "고성군"},
		{"gangwon_yangyang", "양양군"},
	}},
	{"chungbuk", []districtRow{
		{"chungbuk_cheongju", "청주시"},
		{"chungbuk_chungju", "충주시"},
		{"chungbuk_jecheon", "제천시"},
		{"chungbuk_boeun", "보은군"},
		{"chungbuk_okcheon", "옥천군"},
		{"chungbuk_yeongdong", "영동군"},
		{"chungbuk_jincheon", "진천군"},
		{"chungbuk_goesan", "괴산군"},
		{"chungbuk_eumseong", "음성군"},
		{"chungbuk_danyang", "단양군"},
		{"chungbuk_jeungpyeong", "증평군"},
	}},
	{"chungnam", []districtRow{
		{"chungnam_cheonan", "천안시"},
		{"chungnam_gongju", "공주시"},
		{"chungnam_boryeong", "보령시"},
		{"chungnam_asan", "아산시"},
		{"chungnam_seosan", "서산시"},
		{"chungnam_nonsan", "논산시"},
		{"chungnam_gyeryong", "계룡시"},
		{"chungnam_dangjin", "당진시"},
		{"chungnam_geumsan", "금산군"},
		{"chungnam_buyeo", "부여군"},
		{"chungnam_seocheon", "서천군"},
		{"chungnam_cheongyang", "청양군"},
		{"chungnam_hongseong", "홍성군"},
		{"chungnam_yesan", "예산군"},
		{"chungnam_taean", "태안군"},
	}},
	{"jeonbuk", []districtRow{
		{"jeonbuk_jeonju", "전주시"},
		{"jeonbuk_gunsan", "군산시"},
		{"jeonbuk_iksan", "익산시"},
		{"jeonbuk_jeongeup", "정읍시"},
		{"jeonbuk_namwon", "남원시"},
		{"jeonbuk_gimje", "김제시"},
		{"jeonbuk_wanju", "완주군"},
		{"jeonbuk_jingan", "진안군"},
		{"jeonbuk_muju", "무주군"},
		{"jeonbuk_jangsu", "장수군"},
		{"jeonbuk_imsil", "임실군"},
		{"jeonbuk_sunchang", "순창군"},
		{"jeonbuk_gochang", "고창군"},
		{"jeonbuk_buan", "부안군"},
	}},
	{"jeonnam", []districtRow{
		{"jeonnam_mokpo", "목포시"},
		{"jeonnam_yeosu", "여수시"},
		{"jeonnam_suncheon", "순천시"},
		{"jeonnam_naju", "나주시"},
		{"jeonnam_gwangyang", "광양시"},
		{"jeonnam_damyang", "담양군"},
		{"jeonnam_gokseong", "곡성군"},
		{"jeonnam_gurye", "구례군"},
		{"jeonnam_goheung", "고흥군"},
		{"jeonnam_boseong", "보성군"},
		{"jeonnam_hwasun", "화순군"},
		{"jeonnam_jangheung", "장흥군"},
		{"jeonnam_gangjin", "강진군"},
		{"jeonnam_haenam", "해남군"},
		{"jeonnam_yeongam", "영암군"},
		{"jeonnam_muan", "무안군"},
		{"jeonnam_hampyeong", "함평군"},
		{"jeonnam_yeonggwang", "영광군"},
		{"jeonnam_jangseong", "장성군"},
		{"jeonnam_wando", "완도군"},
		{"jeonnam_jindo", "진도군"},
		{"jeonnam_sinan", "신안군"},
	}},
	{"gyeongbuk", []districtRow{
		{"gyeongbuk_pohang", "포항시"},
		{"gyeongbuk_gyeongju", "경주시"},
		{"gyeongbuk_gimcheon", "김천시"},
		{"gyeongbuk_andong", "안동시"},
		{"gyeongbuk_gumi", "구미시"},
		{"gyeongbuk_yeongju", "영주시"},
		{"gyeongbuk_yeongcheon", "영천시"},
		{"gyeongbuk_sangju", "상주시"},
		{"gyeongbuk_mungyeong", "문경시"},
		{"gyeongbuk_gyeongsan", "경산시"},
		{"gyeongbuk_gunwi", "군위군"},
		{"gyeongbuk_uiseong", "의성군"},
		{"gyeongbuk_cheongsong", "청송군"},
		{"gyeongbuk_yeongyang", "영양군"},
		{"gyeongbuk_yeongdeok", "영덕군"},
		{"gyeongbuk_cheongdo", "청도군"},
		{"gyeongbuk_goryeong", "고령군"},
		{"gyeongbuk_seongju", "성주군"},
		{"gyeongbuk_chilgok", "칠곡군"},
		{"gyeongbuk_yecheon", "예천군"},
		{"gyeongbuk_bonghwa", "봉화군"},
		{"gyeongbuk_uljin", "울진군"},
		{"gyeongbuk_ulleung", "울릉군"},
	}},
	{"gyeongnam", []districtRow{
		{"gyeongnam_changwon", "창원시"},
		{"gyeongnam_jinju", "진주시"},
		{"gyeongnam_tongyeong", "통영시"},
		{"gyeongnam_sacheon", "사천시"},
		{"gyeongnam_gimhae", "김해시"},
		{"gyeongnam_miryang", "밀양시"},
		{"gyeongnam_geoje", "거제시"},
		{"gyeongnam_yangsan", "양산시"},
		{"gyeongnam_uiryeong", "의령군"},
		{"gyeongnam_haman", "함안군"},
		{"gyeongnam_changnyeong", "창녕군"},
		{"gyeongnam_goseong", "고성군"},
		{"gyeongnam_namhae", "남해군"},
		{"gyeongnam_hadong", "하동군"},
		{"gyeongnam_sancheong", "산청군"},
		{"gyeongnam_hamyang", "함양군"},
		{"gyeongnam_geochang", "거창군"},
		{"gyeongnam_hapcheon", "합천군"},
	}},
	{"jeju", nil},
	{"daegu", []districtRow{
		{"daegu_jung", "중구"},
		{"daegu_dong", "동구"},
		{"daegu_seo", "서구"},
		{"daegu_nam", "남구"},
		{"daegu_buk", "북구"},
		{"daegu_suseong", "수성구"},
		{"daegu_dalseo", "달서구"},
		{"daegu_dalseong", "달성군"},
	}},
	{"incheon", []districtRow{
		{"incheon_jung", "중구"},
		{"incheon_dong", "동구"},
		{"incheon_michuhol", "미추홀구"},
		{"incheon_yeonsu", "연수구"},
		{"incheon_namdong", "남동구"},
		{"incheon_bupyeong", "부평구"},
		{"incheon_gyeyang", "계양구"},
		{"incheon_seo", "서구"},
		{"incheon_ganghwa", "강화군"},
		{"incheon_ongjin", "옹진군"},
	}},
	{"gwangju", []districtRow{
		{"gwangju_dong", "동구"},
		{"gwangju_seo", "서구"},
		{"gwangju_nam", "남구"},
		{"gwangju_buk", "북구"},
		{"gwangju_gwangsan", "광산구"},
	}},
	{"daejeon", []districtRow{
		{"daejeon_dong", "동구"},
		{"daejeon_jung", "중구"},
		{"daejeon_seo", "서구"},
		{"daejeon_yuseong", "유성구"},
		{"daejeon_daedeok", "대덕구"},
	}},
	{"ulsan", []districtRow{
		{"ulsan_jung", "중구"},
		{"ulsan_nam", "남구"},
		{"ulsan_dong", "동구"},
		{"ulsan_buk", "북구"},
		{"ulsan_ulju", "울주군"},
	}},
	{"sejong", []districtRow{
		{"sejong_sejong", "세종시"},
	}},
}
