package core

const queryBaseURL = "https://kyfw.12306.cn/otn/leftTicket/init"

// BuildQueryURL assembles a one-way left-ticket query. Station names are
// expected to be encoded already, so nothing is escaped here.
func BuildQueryURL(fromEncoded, fromCode, toEncoded, toCode, date string) string {
	return queryBaseURL +
		"?linktypeid=dc" +
		"&fs=" + fromEncoded + "," + fromCode +
		"&ts=" + toEncoded + "," + toCode +
		"&date=" + date +
		"&flag=N,Y,Y"
}
