package country

// dxccInfo is the static metadata of an entity id, usable without a
// loaded database.
type dxccInfo struct {
	iso     string
	name    string
	deleted bool
}

// ISO returns the ISO 3166-1 alpha-2 code of the country the entity belongs
// to, or "" when none is assigned.
func (id DXCC) ISO() string {
	return dxccTable[id].iso
}

// Name returns the ARRL name of the entity, or "" for an unknown id.
func (id DXCC) Name() string {
	return dxccTable[id].name
}

// Deleted reports whether the entity is on the ARRL deleted list.
func (id DXCC) Deleted() bool {
	return dxccTable[id].deleted
}

// Known reports whether id is in the static entity table.
func (id DXCC) Known() bool {
	_, ok := dxccTable[id]
	return ok
}

var dxccTable = map[DXCC]dxccInfo{
	1:   {"CA", "CANADA", false},
	2:   {"", "ABU AIL IS.", true},
	3:   {"AF", "AFGHANISTAN", false},
	4:   {"MP", "AGALEGA & ST. BRANDON IS.", false},
	5:   {"AX", "ALAND IS.", false},
	6:   {"US", "ALASKA", false},
	7:   {"AL", "ALBANIA", false},
	8:   {"SC", "ALDABRA", true},
	9:   {"AS", "AMERICAN SAMOA", false},
	10:  {"FR", "AMSTERDAM & ST. PAUL IS.", false},
	11:  {"IN", "ANDAMAN & NICOBAR IS.", false},
	12:  {"AI", "ANGUILLA", false},
	13:  {"AQ", "ANTARCTICA", false},
	14:  {"AM", "ARMENIA", false},
	15:  {"RU", "ASIATIC RUSSIA", false},
	16:  {"NZ", "NEW ZEALAND SUBANTARCTIC ISLANDS", false},
	17:  {"VE", "AVES I.", false},
	18:  {"AZ", "AZERBAIJAN", false},
	19:  {"CO", "BAJO NUEVO", true},
	20:  {"US", "BAKER & HOWLAND IS.", false},
	21:  {"ES", "BALEARIC IS.", false},
	22:  {"PW", "PALAU", false},
	23:  {"MU", "BLENHEIM REEF", true},
	24:  {"NO", "BOUVET", false},
	25:  {"GB", "BRITISH NORTH BORNEO", true},
	26:  {"GB", "BRITISH SOMALILAND", true},
	27:  {"BY", "BELARUS", false},
	28:  {"", "CANAL ZONE", true},
	29:  {"IC", "CANARY IS.", false},
	30:  {"ID", "CELEBE & MOLUCCA IS.", true},
	31:  {"KI", "C. KIRIBATI (BRITISH PHOENIX IS.)", false},
	32:  {"ES", "CEUTA & MELILLA", false},
	33:  {"GB", "CHAGOS IS.", false},
	34:  {"NZ", "CHATHAM IS.", false},
	35:  {"CX", "CHRISTMAS I.", false},
	36:  {"FR", "CLIPPERTON I.", false},
	37:  {"CR", "COCOS I.", false},
	38:  {"CC", "COCOS (KEELING) IS.", false},
	39:  {"", "COMOROS", true},
	40:  {"GR", "CRETE", false},
	41:  {"FR", "CROZET I.", false},
	42:  {"", "DAMAO, DIU", true},
	43:  {"PR", "DESECHEO I.", false},
	44:  {"", "DESROCHES", true},
	45:  {"GR", "DODECANESE", false},
	46:  {"MY", "EAST MALAYSIA", false},
	47:  {"CL", "EASTER I.", false},
	48:  {"KI", "E. KIRIBATI (LINE IS.)", false},
	49:  {"GQ", "EQUATORIAL GUINEA", false},
	50:  {"MX", "MEXICO", false},
	51:  {"ER", "ERITREA", false},
	52:  {"EE", "ESTONIA", false},
	53:  {"ET", "ETHIOPIA", false},
	54:  {"RU", "EUROPEAN RUSSIA", false},
	55:  {"SC", "FARQUHAR", false},
	56:  {"BR", "FERNANDO DE NORONHA", false},
	57:  {"FR", "FRENCH EQUATORIAL AFRICA", true},
	58:  {"FR", "FRENCH INDO-CHINA", true},
	59:  {"FR", "FRENCH WEST AFRICA", true},
	60:  {"BS", "BAHAMAS", false},
	61:  {"RU", "FRANZ JOSEF LAND", false},
	62:  {"BB", "BARBADOS", false},
	63:  {"FR", "FRENCH GUIANA", false},
	64:  {"BM", "BERMUDA", false},
	65:  {"VG", "BRITISH VIRGIN IS.", false},
	66:  {"BZ", "BELIZE", false},
	67:  {"FR", "FRENCH INDIA", true},
	68:  {"", "KUWAIT/SAUDI ARABIA NEUTRAL ZONE", true},
	69:  {"KY", "CAYMAN IS.", false},
	70:  {"CU", "CUBA", false},
	71:  {"EC", "GALAPAGOS IS.", false},
	72:  {"DO", "DOMINICAN REPUBLIC", false},
	74:  {"SV", "EL SALVADOR", false},
	75:  {"GE", "GEORGIA", false},
	76:  {"GT", "GUATEMALA", false},
	77:  {"GD", "GRENADA", false},
	78:  {"HT", "HAITI", false},
	79:  {"FR", "GUADELOUPE", false},
	80:  {"HN", "HONDURAS", false},
	81:  {"DE", "GERMANY", true},
	82:  {"JM", "JAMAICA", false},
	84:  {"MQ", "MARTINIQUE", false},
	85:  {"", "BONAIRE, CURACAO", true},
	86:  {"NI", "NICARAGUA", false},
	88:  {"PA", "PANAMA", false},
	89:  {"TC", "TURKS & CAICOS IS.", false},
	90:  {"TT", "TRINIDAD & TOBAGO", false},
	91:  {"AW", "ARUBA", false},
	93:  {"", "GEYSER REEF", true},
	94:  {"AG", "ANTIGUA & BARBUDA", false},
	95:  {"DM", "DOMINICA", false},
	96:  {"MS", "MONTSERRAT", false},
	97:  {"LC", "ST. LUCIA", false},
	98:  {"VC", "ST. VINCENT", false},
	99:  {"FR", "GLORIOSO IS.", false},
	100: {"AR", "ARGENTINA", false},
	101: {"", "GOA", true},
	102: {"", "GOLD COAST, TOGOLAND", true},
	103: {"GU", "GUAM", false},
	104: {"BO", "BOLIVIA", false},
	105: {"US", "GUANTANAMO BAY", false},
	106: {"GG", "GUERNSEY", false},
	107: {"GN", "GUINEA", false},
	108: {"BR", "BRAZIL", false},
	109: {"GW", "GUINEA-BISSAU", false},
	110: {"US", "HAWAII", false},
	111: {"AU", "HEARD I.", false},
	112: {"CL", "CHILE", false},
	113: {"", "IFNI", true},
	114: {"IM", "ISLE OF MAN", false},
	115: {"IT", "ITALIAN SOMALILAND", true},
	116: {"CO", "COLOMBIA", false},
	117: {"CH", "ITU HQ", false},
	118: {"NO", "JAN MAYEN", false},
	119: {"", "JAVA", true},
	120: {"EC", "ECUADOR", false},
	122: {"JE", "JERSEY", false},
	123: {"US", "JOHNSTON I.", false},
	124: {"FR", "JUAN DE NOVA, EUROPA", false},
	125: {"CL", "JUAN FERNANDEZ IS.", false},
	126: {"RU", "KALININGRAD", false},
	127: {"", "KAMARAN IS.", true},
	128: {"", "KARELO-FINNISH REPUBLIC", true},
	129: {"GY", "GUYANA", false},
	130: {"KZ", "KAZAKHSTAN", false},
	131: {"FR", "KERGUELEN IS.", false},
	132: {"PY", "PARAGUAY", false},
	133: {"NZ", "KERMADEC IS.", false},
	134: {"US", "KINGMAN REEF", true},
	135: {"KG", "KYRGYZSTAN", false},
	136: {"PE", "PERU", false},
	137: {"KR", "REPUBLIC OF KOREA", false},
	138: {"US", "KURE I.", false},
	139: {"", "KURIA MURIA I.", true},
	140: {"SR", "SURINAME", false},
	141: {"FK", "FALKLAND IS.", false},
	142: {"IN", "LAKSHADWEEP IS.", false},
	143: {"LA", "LAOS", false},
	144: {"UY", "URUGUAY", false},
	145: {"LV", "LATVIA", false},
	146: {"LT", "LITHUANIA", false},
	147: {"AU", "LORD HOWE I.", false},
	148: {"VE", "VENEZUELA", false},
	149: {"PT", "AZORES", false},
	150: {"AU", "AUSTRALIA", false},
	151: {"", "MALYJ VYSOTSKIJ I.", true},
	152: {"MO", "MACAO", false},
	153: {"AU", "MACQUARIE I.", false},
	154: {"", "YEMEN ARAB REPUBLIC", true},
	155: {"", "MALAYA", true},
	157: {"NR", "NAURU", false},
	158: {"VU", "VANUATU", false},
	159: {"MV", "MALDIVES", false},
	160: {"TO", "TONGA", false},
	161: {"CO", "MALPELO I.", false},
	162: {"NC", "NEW CALEDONIA", false},
	163: {"PG", "PAPUA NEW GUINEA", false},
	164: {"", "MANCHURIA", true},
	165: {"MU", "MAURITIUS", false},
	166: {"US", "MARIANA IS.", false},
	167: {"SE", "MARKET REEF", false},
	168: {"MH", "MARSHALL IS.", false},
	169: {"YT", "MAYOTTE", false},
	170: {"NZ", "NEW ZEALAND", false},
	171: {"AU", "MELLISH REEF", false},
	172: {"PN", "PITCAIRN I.", false},
	173: {"FM", "MICRONESIA", false},
	174: {"US", "MIDWAY I.", false},
	175: {"PF", "FRENCH POLYNESIA", false},
	176: {"FJ", "FIJI", false},
	177: {"JP", "MINAMI TORISHIMA", false},
	178: {"", "MINERVA REEF", true},
	179: {"MD", "MOLDOVA", false},
	180: {"GR", "MOUNT ATHOS", false},
	181: {"MZ", "MOZAMBIQUE", false},
	182: {"US", "NAVASSA I.", false},
	183: {"", "NETHERLANDS BORNEO", true},
	184: {"", "NETHERLANDS NEW GUINEA", true},
	185: {"SB", "SOLOMON IS.", false},
	186: {"", "NEWFOUNDLAND, LABRADOR", true},
	187: {"NE", "NIGER", false},
	188: {"NU", "NIUE", false},
	189: {"NF", "NORFOLK I.", false},
	190: {"WS", "SAMOA", false},
	191: {"NZ", "NORTH COOK IS.", false},
	192: {"JP", "OGASAWARA", false},
	193: {"", "OKINAWA (RYUKYU IS.)", true},
	194: {"", "OKINO TORI-SHIMA", true},
	195: {"GQ", "ANNOBON I.", false},
	196: {"", "PALESTINE", true},
	197: {"US", "PALMYRA & JARVIS IS.", false},
	198: {"", "PAPUA TERRITORY", true},
	199: {"NO", "PETER 1 I.", false},
	200: {"", "PORTUGUESE TIMOR", true},
	201: {"ZA", "PRINCE EDWARD & MARION IS.", false},
	202: {"PR", "PUERTO RICO", false},
	203: {"AD", "ANDORRA", false},
	204: {"MX", "REVILLAGIGEDO", false},
	205: {"GB", "ASCENSION I.", false},
	206: {"AT", "AUSTRIA", false},
	207: {"MU", "RODRIGUEZ I.", false},
	208: {"", "RUANDA-URUNDI", true},
	209: {"BE", "BELGIUM", false},
	210: {"", "SAAR", true},
	211: {"CA", "SABLE I.", false},
	212: {"BG", "BULGARIA", false},
	213: {"FR", "SAINT MARTIN", false},
	214: {"FR", "CORSICA", false},
	215: {"CY", "CYPRUS", false},
	216: {"NI", "SAN ANDRES & PROVIDENCIA", false},
	217: {"CL", "SAN FELIX & SAN AMBROSIO", false},
	218: {"", "CZECHOSLOVAKIA", true},
	219: {"ST", "SAO TOME & PRINCIPE", false},
	220: {"", "SARAWAK", true},
	221: {"DK", "DENMARK", false},
	222: {"FO", "FAROE IS.", false},
	223: {"GB-ENG", "ENGLAND", false},
	224: {"FI", "FINLAND", false},
	225: {"IT", "SARDINIA", false},
	226: {"", "SAUDI ARABIA/IRAQ NEUTRAL ZONE", true},
	227: {"FR", "FRANCE", false},
	228: {"", "SERRANA BANK & RONCADOR CAY", true},
	229: {"DE", "GERMAN DEMOCRATIC REPUBLIC", true},
	230: {"DE", "FEDERAL REPUBLIC OF GERMANY", false},
	231: {"", "SIKKIM", true},
	232: {"SO", "SOMALIA", false},
	233: {"GI", "GIBRALTAR", false},
	234: {"GS", "SOUTH COOK IS.", false},
	235: {"GS", "SOUTH GEORGIA I.", false},
	236: {"GR", "GREECE", false},
	237: {"GL", "GREENLAND", false},
	238: {"GB", "SOUTH ORKNEY IS.", false},
	239: {"HU", "HUNGARY", false},
	240: {"GS", "SOUTH SANDWICH IS.", false},
	241: {"GB", "SOUTH SHETLAND IS.", false},
	242: {"IS", "ICELAND", false},
	243: {"", "PEOPLE'S DEMOCRATIC REP. OF YEMEN", true},
	244: {"", "SOUTHERN SUDAN", true},
	245: {"IE", "IRELAND", false},
	246: {"MT", "SOVEREIGN MILITARY ORDER OF MALTA", false},
	247: {"PH", "SPRATLY IS.", false},
	248: {"IT", "ITALY", false},
	249: {"KN", "ST. KITTS & NEVIS", false},
	250: {"SH", "ST. HELENA", false},
	251: {"LI", "LIECHTENSTEIN", false},
	252: {"CA", "ST. PAUL I.", false},
	253: {"BR", "ST. PETER & ST. PAUL ROCKS", false},
	254: {"LU", "LUXEMBOURG", false},
	255: {"NL", "ST. MAARTEN, SABA, ST. EUSTATIUS", true},
	256: {"PT", "MADEIRA IS.", false},
	257: {"MT", "MALTA", false},
	258: {"", "SUMATRA", true},
	259: {"NO", "SVALBARD", false},
	260: {"MC", "MONACO", false},
	261: {"", "SWAN IS.", true},
	262: {"TJ", "TAJIKISTAN", false},
	263: {"NL", "NETHERLANDS", false},
	264: {"", "TANGIER", true},
	265: {"GB-NIR", "NORTHERN IRELAND", false},
	266: {"NO", "NORWAY", false},
	267: {"", "TERRITORY OF NEW GUINEA", true},
	268: {"", "TIBET", true},
	269: {"PL", "POLAND", false},
	270: {"TK", "TOKELAU IS.", false},
	271: {"", "TRIESTE", true},
	272: {"PT", "PORTUGAL", false},
	273: {"BR", "TRINDADE & MARTIM VAZ IS.", false},
	274: {"GB", "TRISTAN DA CUNHA & GOUGH I.", false},
	275: {"RO", "ROMANIA", false},
	276: {"FR", "TROMELIN I.", false},
	277: {"CA", "ST. PIERRE & MIQUELON", false},
	278: {"SM", "SAN MARINO", false},
	279: {"GB-SCT", "SCOTLAND", false},
	280: {"TM", "TURKMENISTAN", false},
	281: {"ES", "SPAIN", false},
	282: {"TV", "TUVALU", false},
	283: {"CY", "UK SOVEREIGN BASE AREAS ON CYPRUS", false},
	284: {"SE", "SWEDEN", false},
	285: {"VI", "VIRGIN IS.", false},
	286: {"UG", "UGANDA", false},
	287: {"CH", "SWITZERLAND", false},
	288: {"UA", "UKRAINE", false},
	289: {"united-nations", "UNITED NATIONS HQ", false},
	291: {"US", "UNITED STATES OF AMERICA", false},
	292: {"UZ", "UZBEKISTAN", false},
	293: {"VN", "VIET NAM", false},
	294: {"CB-WLS", "WALES", false},
	295: {"VA", "VATICAN", false},
	296: {"RS", "SERBIA", false},
	297: {"US", "WAKE I.", false},
	298: {"WF", "WALLIS & FUTUNA IS.", false},
	299: {"MY", "WEST MALAYSIA", false},
	301: {"KI", "W. KIRIBATI (GILBERT IS. )", false},
	302: {"EH", "WESTERN SAHARA", false},
	303: {"AU", "WILLIS I.", false},
	304: {"BH", "BAHRAIN", false},
	305: {"BD", "BANGLADESH", false},
	306: {"BT", "BHUTAN", false},
	307: {"", "ZANZIBAR", true},
	308: {"CR", "COSTA RICA", false},
	309: {"MM", "MYANMAR", false},
	312: {"KH", "CAMBODIA", false},
	315: {"LK", "SRI LANKA", false},
	318: {"CN", "CHINA", false},
	321: {"HK", "HONG KONG", false},
	324: {"IN", "INDIA", false},
	327: {"ID", "INDONESIA", false},
	330: {"IR", "IRAN", false},
	333: {"IQ", "IRAQ", false},
	336: {"IL", "ISRAEL", false},
	339: {"JP", "JAPAN", false},
	342: {"JO", "JORDAN", false},
	344: {"KP", "DEMOCRATIC PEOPLE'S REP. OF KOREA", false},
	345: {"BN", "BRUNEI DARUSSALAM", false},
	348: {"KW", "KUWAIT", false},
	354: {"LB", "LEBANON", false},
	363: {"MN", "MONGOLIA", false},
	369: {"NP", "NEPAL", false},
	370: {"OM", "OMAN", false},
	372: {"PK", "PAKISTAN", false},
	375: {"PH", "PHILIPPINES", false},
	376: {"QA", "QATAR", false},
	378: {"SA", "SAUDI ARABIA", false},
	379: {"SC", "SEYCHELLES", false},
	381: {"SG", "SINGAPORE", false},
	382: {"DJ", "DJIBOUTI", false},
	384: {"SY", "SYRIA", false},
	386: {"TW", "TAIWAN", false},
	387: {"TH", "THAILAND", false},
	390: {"TR", "TURKEY", false},
	391: {"AE", "UNITED ARAB EMIRATES", false},
	400: {"DZ", "ALGERIA", false},
	401: {"AO", "ANGOLA", false},
	402: {"BW", "BOTSWANA", false},
	404: {"BI", "BURUNDI", false},
	406: {"CM", "CAMEROON", false},
	408: {"CF", "CENTRAL AFRICA", false},
	409: {"CV", "CAPE VERDE", false},
	410: {"TD", "CHAD", false},
	411: {"KM", "COMOROS", false},
	412: {"CG", "REPUBLIC OF THE CONGO", false},
	414: {"CD", "DEMOCRATIC REPUBLIC OF THE CONGO", false},
	416: {"BJ", "BENIN", false},
	420: {"GA", "GABON", false},
	422: {"GM", "THE GAMBIA", false},
	424: {"GH", "GHANA", false},
	428: {"CI", "COTE D'IVOIRE", false},
	430: {"KE", "KENYA", false},
	432: {"LS", "LESOTHO", false},
	434: {"LR", "LIBERIA", false},
	436: {"LY", "LIBYA", false},
	438: {"MG", "MADAGASCAR", false},
	440: {"MW", "MALAWI", false},
	442: {"ML", "MALI", false},
	444: {"MR", "MAURITANIA", false},
	446: {"MA", "MOROCCO", false},
	450: {"NG", "NIGERIA", false},
	452: {"ZW", "ZIMBABWE", false},
	453: {"FR", "REUNION I.", false},
	454: {"RW", "RWANDA", false},
	456: {"SN", "SENEGAL", false},
	458: {"SL", "SIERRA LEONE", false},
	460: {"FJ", "ROTUMA I.", false},
	462: {"ZA", "SOUTH AFRICA", false},
	464: {"NA", "NAMIBIA", false},
	466: {"SD", "SUDAN", false},
	468: {"SZ", "SWAZILAND", false},
	470: {"TZ", "TANZANIA", false},
	474: {"TN", "TUNISIA", false},
	478: {"EG", "EGYPT", false},
	480: {"BF", "BURKINA FASO", false},
	482: {"ZM", "ZAMBIA", false},
	483: {"TG", "TOGO", false},
	488: {"", "WALVIS BAY", true},
	489: {"FJ", "CONWAY REEF", false},
	490: {"KI", "BANABA I. (OCEAN I.)", false},
	492: {"YE", "YEMEN", false},
	493: {"", "PENGUIN IS.", true},
	497: {"HR", "CROATIA", false},
	499: {"SI", "SLOVENIA", false},
	501: {"BA", "BOSNIA-HERZEGOVINA", false},
	502: {"MK", "MACEDONIA", false},
	503: {"CZ", "CZECH REPUBLIC", false},
	504: {"SK", "SLOVAK REPUBLIC", false},
	505: {"TW", "PRATAS I.", false},
	506: {"PH", "SCARBOROUGH REEF", false},
	507: {"SB", "TEMOTU PROVINCE", false},
	508: {"PF", "AUSTRAL I.", false},
	509: {"FR", "MARQUESAS IS.", false},
	510: {"PS", "PALESTINE", false},
	511: {"TL", "TIMOR-LESTE", false},
	512: {"GB", "CHESTERFIELD IS.", false},
	513: {"PN", "DUCIE I.", false},
	514: {"ME", "MONTENEGRO", false},
	515: {"US", "SWAINS I.", false},
	516: {"FR", "SAINT BARTHELEMY", false},
	517: {"CW", "CURACAO", false},
	518: {"NL", "ST MAARTEN", false},
	519: {"AN", "SABA & ST. EUSTATIUS", false},
	520: {"NL", "BONAIRE", false},
	521: {"SS", "SOUTH SUDAN (REPUBLIC OF)", false},
	522: {"", "REPUBLIC OF KOSOVO", false},
}
