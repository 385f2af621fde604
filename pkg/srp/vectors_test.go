package srp_test

import (
	"crypto/sha1" //nolint:gosec // SHA-1 is required by the RFC 5054 test vectors
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/fzdarsky/srp6a/pkg/srp"
	"github.com/stretchr/testify/require"
)

// sha1Hash is only used to reproduce the RFC 5054 Appendix B vectors.
var sha1Hash srp.HashFunc = func() srp.Hasher { return sha1.New() }

// Shared inputs: RFC 5054 Appendix B.
const (
	vectorUsername = "alice"
	vectorPassword = "password123"
	vectorSalt     = "BEB25379D1A8581EB5A727673A2441EE"
	vectorA        = "60975527035CF2AD1989806F0407210BC81EDC04E2762A56AFD529DDDA2D4393"
	vectorB        = "E487CB59D31AC550471E81F00F6928E01DDA08E974A004F49E61F5D105284D20"
)

// replyVector holds the values ProcessReply derives for the shared inputs,
// with x computed from an empty username.
type replyVector struct {
	name      string
	group     func() *srp.Group
	hash      srp.HashFunc
	k         string
	x         string
	verifier  string
	aPub      string
	bPub      string
	u         string
	premaster string
	key       string
	m1        string
	m2        string
}

func replyVectors() []replyVector {
	return []replyVector{
		{
			name:  "2048/sha256",
			group: srp.Group2048,
			hash:  srp.SHA256,
			k: "5B9E8EF059C6B32EA59FC1D322D37F04AA30BAE5AA9003B8321E21DDB04E300",
			x: "A92969831D154A26F3CD84F31B96D21A0386E6AF41294E2EFBBE8C8B6CB861F6",
			verifier: "76D64200981E941D522FC53F6FCCA6391D24B0C5AA914FB1747F3F31A713D50F" +
				"5229398C96DEA62032589934A9322F47BBE993B146B6D1B7F29F0EF469BE9B32" +
				"B9BD51706310171DD4264A019945DD4F4A0642A183D9FD704F1D197D291430EC" +
				"595932FB3F777E7C8678421D7B752944EAE5ABF6EE58B84B6540EDCA0A4B1220" +
				"7D36FBDC8C7BD9FCB13095FC81EEC35577CF930E3783A6A62A4C21ADE710BFEA" +
				"EF9B7E8ABCF4E605D29D88EE80ECA541C83A64280C4B118590242C10A3BD2D71" +
				"10350B6C93B3327C8A4FA4806DE92670B0B2B8B581075108986A90B86FB42959" +
				"359D6EA45F43FD003E4B235D41DAF87AD0CE2D2094FBBDF2E79EE698EEE1CCA4",
			aPub: "4B700F8D48E69C9AAE40C684AC7C7C03121E2B7602EB4C3514804CCADA0ED401" +
				"9193A351ECC65A6F854EDE91EB096E721B22D701C7ADC64E9CEDACD75F2E26BB" +
				"2F5E45DD53DC8DBEAFFFE82AA49FCA0573444691212537A73CF80E2503925820" +
				"5A7EDF4749B30ADAF25877C62FCD09D6613598BCD4BAF2A9727A53706A278148" +
				"992B2ABB23AD5D512D269E16CA11BC0895B5A3B5EC4721CDE40A8C39C796E94F" +
				"0BE86DBBEB33DA7037018983921ABA3F5053195D5AC1DA4E567E3C0E75D9E060" +
				"9F92E850657B2BE4771F415B9CACC5C1ECEDC30133BF6474F5022C6519D78076" +
				"0CA4D8D3B966B034BD73877C1B3B33F474B9C3C5299A1968F3E6CD3BFE84445A",
			bPub: "7AD2A226AB035EC441F72993BA16A9546B642AA8E8A08E246BAFE7F8EE903FBA" +
				"72E58637207ECF46D64760D7CC812DCBC1F7F36A8BCC32A71A2ABFADC23FD179" +
				"D6C4F81856A29C7A9CA186F7D56D2221188D1C45350DFD83599BFBD0423ABCBA" +
				"2EFDE843B17CE71011FA1BCA6F906741FF2635978FB2DB235A584C7E6C808F77" +
				"93CB8837A0AEB02F3118DAB8927BEF36F284E09E095B6B2FDC54C43CA1CDA252" +
				"0D5022CD855137E74719C6433655AFC5722729F221F39B38CA95BFC1DBB45926" +
				"8D255586EF8AF5C659921DFE1D28765E0B7D3841DBA8FD81C8CE91F4D9387EC2" +
				"25E61002C9A475BF565842C333A6DBABB1E1F8B24778C84CE74AAAC049736A5B",
			u: "DB5B61323946134130F7C0F94DE20C335756A2230EFCC5F8DE6BF58E26FA6692",
			premaster: "9AA686DC52A60BE4D849224B28CE706413B10E71249F913FDF843D7010EDD0A7" +
				"1CFB44A41A108E21BDBC5718B34F1ABE2F77A9D0CAB4FB514C10E84E9EC8A4B4" +
				"1B6EA002B80B9A1552F941B3F305743701C812FB900CB7D5A3476B0FCD8F89E4" +
				"EB8D8AECF8D11C85B6347A6855986AA7BCE53214C5531602B44535E4DC84B114" +
				"624B9491D6C5DDFB829B373CD108CFAB4960B993E15CDD9CD39D075DCE1EC1E0" +
				"47BC756FEE0FA41F45FC8E23DF41D3AAB6E89D0CE000B7A4E5673BF87044BCFB" +
				"2FFACBE8514DA4922271B891741D8235EEAE3A48CE53E38A9B05FD7C99FB2238" +
				"9909A3BF2ED05ACF07B798BC062F4D120DB952DC0BD202237271783C6241608C",
			key: "A429E4401E02B18CE6BCBBBF9E56B1FC1334565932B133C12C6D77F83EC39C2F",
			m1:  "2AD7310684FB41E7818413FEE6A024B4366356A78A7E47049B116E438B2647AE",
			m2:  "20C1191F79F5D6E03CAA56F085F2DBDFC43FAB02A1573592479FF6C3087BB987",
		},
		{
			name:  "1024/sha1",
			group: srp.Group1024,
			hash:  sha1Hash,
			k: "7556AA045AEF2CDD07ABAF0F665C3E818913186F",
			x: "300CC88C5C0DFF7125936CF83B97219407CAA403",
			verifier: "94AB81477BD8F19EECDF884BB0A8B57CF1909AF5C87F71B9E5C7945F6AD038A7" +
				"32B4BED7B5AD1E41ED6903E42F99B3C39958E065DBBA07C146B45783710A8693" +
				"92F38A99778E8DC202786820EE213D0EA48F45C5E73B96C9F2171C32C6C71908" +
				"5DFE56C7CD0D83D115214EB31F948E30833FCFA1491B7DB9494F211A686A4023",
			aPub: "61D5E490F6F1B79547B0704C436F523DD0E560F0C64115BB72557EC44352E890" +
				"3211C04692272D8B2D1A5358A2CF1B6E0BFCF99F921530EC8E39356179EAE45E" +
				"42BA92AEACED825171E1E8B9AF6D9C03E1327F44BE087EF06530E69F66615261" +
				"EEF54073CA11CF5858F0EDFDFE15EFEAB349EF5D76988A3672FAC47B0769447B",
			bPub: "689BF74A039D2CF4524D3E7594892C795634513C97B6143F56A14C7CAD7B8462" +
				"149D5EC127BC80FEBDD94905EE39FFF2FA39BCF7ADADB739C092B874E87ACB80" +
				"BED61A808BA41C2F7F62F4FAA33068F18346D13FBD15670664B1D633CC6AB2CE" +
				"DD8C2202ADBEC8D599E8AD80C2E56823D76D5DD51EF1C829E14BF514E1C097CE",
			u: "9183134E307CA5A9F428470EF863118415B4819D",
			premaster: "90E7D85BB7DA93055A63ED621529088864D3D911E220D7D1478D781805F2DA53" +
				"FFAD1A0C9A502C86FF0904ECC70C0C19065497412E07C3C489C80FAAB282BF61" +
				"59E93C62A8C9B513038E4A573412C80ADF1E94AB18BA095049F4CF7B6CB2C0A2" +
				"2CF5B6C4D61366E3A07B39609912002B0B8C67A27505EC2EADB599E35182B7EA",
			key: "7119229098F36DCF5C5DBE7FA12A3FF64D3F22C7",
			m1:  "21CB28EC038E7698CDDFB013D6AEF5940161830F",
			m2:  "A4D0D65B4F5CC22E51F84ED9ACACAB7C8014169A",
		},
		{
			name:  "2048/sha512",
			group: srp.Group2048,
			hash:  srp.SHA512,
			k: "EE881E03028FE8958639BEC52094EB6127081E7EA8E7D0F2618AC8A2A8DF48D6" +
				"6F44EC14659A56822279817D1FA484B5A13F1495C1D77C112ED424971721A43C",
			x: "B333E6E5356FDD571E4498C0686DF1AD8D609345FAF406AF2319311A5A040288" +
				"47B868C539BE85BD543A87D7791F4F23EF10FBF2CD250863E45F709149146BD3",
			verifier: "554E8DB54DA196FE1416C2C6493E6762767679FBD7A8E0680853D377A4538C68" +
				"C9B656D33E90AE13FE7ED1185765E8BB94776358ACB69DE3D645C7E25E53B9B8" +
				"C62A8DB0E82168EF15A4161D5AA1EEC412253A5A74718BA4C96A5E540970A559" +
				"2DDEFA6451142600955C7BA6E6099E2140DECFCDAB15A7B989C1AE102758176A" +
				"9C5EF055D9271BA24C998C992A9CA8C337720AB27A1214C2BFB90CF7A2EEF03C" +
				"720A1DE6866E4DFFA2D09F5C1FF36F069760FD9CF9D3395FD63DCDEF3C3022F1" +
				"79ECAA1FBB58CF21B37F419E84AEF4B49B97FBF7ED9AE6D5ACB97566D9DA3FDA" +
				"2992CDC5BA45B0D94A7FA3D5898BE457FFE8E8B1A4EB8108F0EB94EE91EDE4",
			aPub: "4B700F8D48E69C9AAE40C684AC7C7C03121E2B7602EB4C3514804CCADA0ED401" +
				"9193A351ECC65A6F854EDE91EB096E721B22D701C7ADC64E9CEDACD75F2E26BB" +
				"2F5E45DD53DC8DBEAFFFE82AA49FCA0573444691212537A73CF80E2503925820" +
				"5A7EDF4749B30ADAF25877C62FCD09D6613598BCD4BAF2A9727A53706A278148" +
				"992B2ABB23AD5D512D269E16CA11BC0895B5A3B5EC4721CDE40A8C39C796E94F" +
				"0BE86DBBEB33DA7037018983921ABA3F5053195D5AC1DA4E567E3C0E75D9E060" +
				"9F92E850657B2BE4771F415B9CACC5C1ECEDC30133BF6474F5022C6519D78076" +
				"0CA4D8D3B966B034BD73877C1B3B33F474B9C3C5299A1968F3E6CD3BFE84445A",
			bPub: "230FEBB6CA4163D6FE43B6B790F3AB9C57CC6B1F0EE463E7F0CB681C95616A74" +
				"BC29F0192AB2DE7B551B5DDBD7DAF934BA5486296EB242BCF6D09C7C8BEA3281" +
				"773CD4B8E069A276310B1A52645BEA971D9F4E30D226C34C04E01A4F86EF75BA" +
				"8F7CDF9F46D9182D4A7991F1554B5D97EAD191FD0925CBDE24E5FF9235D33F95" +
				"05F676A7EE8F9E3EE6D9154682A9D9054D927EB9B7A8C8C06C39327788517963" +
				"055F9CEA0E8343EB2B7B13A78894F2BD6326A97EBB2E7DB4DC37A86289B94CD6" +
				"B365F6CFB6B08A0DDE07A6B111AED1E72065CFD36AAFD332253F7E51C312F932" +
				"8BFDCEABEDC02733834859E7C724103A87C432E5906F91E959FCD5E134506A63",
			u: "78425EF224B9CCF2B4C39884C191BFAABB9A85B97F4310E0CCF0F66DA3D62E43" +
				"8F019E6AF72F7B7E5E574EDE3CC3F7687A28EDDEDB526133458DFB53B0188183",
			premaster: "175078D241A7E50909072C2DFB3E027443B100EC28AEBD87DEB5B1120BFB4CD7" +
				"A687ED6AAA2225015E3C7F826964DC9850FE133C1313703C4BF7430470967522" +
				"1D6006AD7D90B76BCF9CF2686F92846BB5A67C0A63C979730726AD6E43A9D850" +
				"0D79318142D1F4154BA5B15781051A908ECC39DD8DED16C1A48DB26C3316F9E7" +
				"CC62FF981915A6E9E895368C5D65ABC63F9DCD8F22BCBC7BCB92875E5C383B79" +
				"49D51B0DBCDFCD973A9F6AB53A34D1DEE04CDDCF96A7336D4F97156CB80EA684" +
				"BB2BDE8B54A7232B94F069404F634D475D317149063284E301F95B200170A554" +
				"50EE9515D7D2DD9E8EC913AFC492F66909EEB941B2B518284997A7487AFCDDFD",
			key: "2898B41B25D16F756B338151E1222EB5A81C6330A152CF7AFF47B7F9E6357DB6" +
				"FD210D894C0B1465BB5B970B8E3C19065014F5EA928D05C646BE972B083E3442",
			m1: "FFD7F0D62D45467157D57A1BDAA2B5910CAFD426E8A89D2C9CF352F9EE5D9B8F" +
				"8B5EEB19A9C3F8E3D2A1E2FB042ECC7B1E1D0D8B97DBE2A28344A3BADA611965",
			m2: "176B057B607BBFD2C0D95858A619FDBAF8AF88D40860626890662A8F245B552B" +
				"D56A7C751C5D774A54330D4384957C0B81B97BB0D267F2E27768C167B8BE5663",
		},
	}
}

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func mustInt(t *testing.T, s string) *big.Int {
	t.Helper()
	n, ok := new(big.Int).SetString(s, 16)
	require.True(t, ok, "invalid hex integer %q", s)
	return n
}
